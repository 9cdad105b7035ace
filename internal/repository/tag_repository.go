package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/db"
	"github.com/icemanhv/forum/internal/model"
)

// TagRepository defines tag persistence operations.
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository builds a GORM-backed repository.
func NewTagRepository(gdb *gorm.DB) TagRepository {
	return &tagRepository{db: gdb}
}

func (r *tagRepository) conn(ctx context.Context) *gorm.DB {
	return db.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *tagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return r.conn(ctx).Create(tag).Error
}

func (r *tagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.conn(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.conn(ctx).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
