package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/db"
	"github.com/icemanhv/forum/internal/model"
)

// BlogTagRepository inserts join rows. Linking a blog to a tag is always an
// insert here, never a mutation of a loaded tag collection.
type BlogTagRepository interface {
	Create(ctx context.Context, link *model.BlogTag) error
}

type blogTagRepository struct {
	db *gorm.DB
}

// NewBlogTagRepository builds a GORM-backed repository.
func NewBlogTagRepository(gdb *gorm.DB) BlogTagRepository {
	return &blogTagRepository{db: gdb}
}

func (r *blogTagRepository) conn(ctx context.Context) *gorm.DB {
	return db.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *blogTagRepository) Create(ctx context.Context, link *model.BlogTag) error {
	return r.conn(ctx).Create(link).Error
}
