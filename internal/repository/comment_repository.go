package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/db"
	"github.com/icemanhv/forum/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByBlog(ctx context.Context, blogID uint) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(gdb *gorm.DB) CommentRepository {
	return &commentRepository{db: gdb}
}

func (r *commentRepository) conn(ctx context.Context) *gorm.DB {
	return db.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.conn(ctx).Create(comment).Error
}

func (r *commentRepository) ListByBlog(ctx context.Context, blogID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.conn(ctx).
		Preload("User").
		Where("blog_id = ?", blogID).
		Order("timestamp ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
