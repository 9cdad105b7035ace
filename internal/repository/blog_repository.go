package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/db"
	"github.com/icemanhv/forum/internal/model"
)

// BlogRepository defines blog persistence operations. Listing is always
// ordered by creation time descending, newest first.
type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	FindByID(ctx context.Context, id uint) (*model.Blog, error)
	ListPage(ctx context.Context, offset, limit int) ([]model.Blog, error)
	Count(ctx context.Context) (int64, error)
	ListPageByTag(ctx context.Context, tagID uint, offset, limit int) ([]model.Blog, error)
	CountByTag(ctx context.Context, tagID uint) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository builds a GORM-backed repository.
func NewBlogRepository(gdb *gorm.DB) BlogRepository {
	return &blogRepository{db: gdb}
}

func (r *blogRepository) conn(ctx context.Context) *gorm.DB {
	return db.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	return r.conn(ctx).Create(blog).Error
}

// FindByID loads the blog with its author and tags. Comments are loaded
// separately through CommentRepository.ListByBlog.
func (r *blogRepository) FindByID(ctx context.Context, id uint) (*model.Blog, error) {
	var blog model.Blog
	err := r.conn(ctx).
		Preload("User").
		Preload("Tags").
		First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) ListPage(ctx context.Context, offset, limit int) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.conn(ctx).
		Preload("User").
		Preload("Tags").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&model.Blog{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListPageByTag restricts the page to blogs linked to the tag through
// blog_tags join rows. (blog_id, tag_id) is not unique, so the join is
// deduplicated: a blog linked twice to the same tag still appears once.
func (r *blogRepository) ListPageByTag(ctx context.Context, tagID uint, offset, limit int) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.conn(ctx).
		Preload("User").
		Preload("Tags").
		Distinct("blog.*").
		Joins("JOIN blog_tags ON blog_tags.blog_id = blog.id").
		Where("blog_tags.tag_id = ?", tagID).
		Order("blog.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) CountByTag(ctx context.Context, tagID uint) (int64, error) {
	var total int64
	err := r.conn(ctx).Model(&model.Blog{}).
		Distinct("blog.id").
		Joins("JOIN blog_tags ON blog_tags.blog_id = blog.id").
		Where("blog_tags.tag_id = ?", tagID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
