package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "github.com/icemanhv/forum/internal/errors"
	"github.com/icemanhv/forum/internal/model"
)

// In-memory repositories for exercising the blog/tag link round trip
// without a database.

type memStore struct {
	blogs []model.Blog
	tags  []model.Tag
	links []model.BlogTag
}

type memBlogRepo struct{ s *memStore }

func (r *memBlogRepo) Create(_ context.Context, blog *model.Blog) error {
	blog.ID = uint(len(r.s.blogs) + 1)
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}
	r.s.blogs = append(r.s.blogs, *blog)
	return nil
}

func (r *memBlogRepo) FindByID(_ context.Context, id uint) (*model.Blog, error) {
	for i := range r.s.blogs {
		if r.s.blogs[i].ID == id {
			blog := r.s.blogs[i]
			return &blog, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memBlogRepo) ListPage(_ context.Context, offset, limit int) ([]model.Blog, error) {
	return pageOf(r.s.blogs, offset, limit), nil
}

func (r *memBlogRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.blogs)), nil
}

// ListPageByTag deduplicates linked blogs the way the SQL repository's
// DISTINCT does: duplicated join rows yield one result.
func (r *memBlogRepo) ListPageByTag(_ context.Context, tagID uint, offset, limit int) ([]model.Blog, error) {
	linked := make(map[uint]bool)
	for _, link := range r.s.links {
		if link.TagID == tagID {
			linked[link.BlogID] = true
		}
	}
	var matched []model.Blog
	for _, blog := range r.s.blogs {
		if linked[blog.ID] {
			matched = append(matched, blog)
		}
	}
	return pageOf(matched, offset, limit), nil
}

func (r *memBlogRepo) CountByTag(_ context.Context, tagID uint) (int64, error) {
	seen := make(map[uint]bool)
	for _, link := range r.s.links {
		if link.TagID == tagID {
			seen[link.BlogID] = true
		}
	}
	return int64(len(seen)), nil
}

func pageOf(blogs []model.Blog, offset, limit int) []model.Blog {
	sorted := make([]model.Blog, len(blogs))
	copy(sorted, blogs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if offset >= len(sorted) {
		return []model.Blog{}
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end]
}

type memTagRepo struct{ s *memStore }

func (r *memTagRepo) Create(_ context.Context, tag *model.Tag) error {
	tag.ID = uint(len(r.s.tags) + 1)
	r.s.tags = append(r.s.tags, *tag)
	return nil
}

func (r *memTagRepo) FindByName(_ context.Context, name string) (*model.Tag, error) {
	for i := range r.s.tags {
		if r.s.tags[i].Name == name {
			tag := r.s.tags[i]
			return &tag, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memTagRepo) List(_ context.Context) ([]model.Tag, error) {
	return append([]model.Tag(nil), r.s.tags...), nil
}

func TestTagFilterRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	blogRepo := &memBlogRepo{s: store}
	tagRepo := &memTagRepo{s: store}

	// Tags A and B exist, C does not.
	tagA := &model.Tag{Name: "A"}
	tagB := &model.Tag{Name: "B"}
	assert.NoError(t, tagRepo.Create(ctx, tagA))
	assert.NoError(t, tagRepo.Create(ctx, tagB))

	// A blog linked to both tags through blog_tags join rows.
	blog := &model.Blog{Title: "tagged", Content: "body", UserID: 1}
	assert.NoError(t, blogRepo.Create(ctx, blog))
	store.links = append(store.links,
		model.BlogTag{ID: 1, BlogID: blog.ID, TagID: tagA.ID},
		model.BlogTag{ID: 2, BlogID: blog.ID, TagID: tagB.ID},
	)

	service := NewContentService(blogRepo, tagRepo, new(MockCommentRepository))

	pageA, err := service.FilterByTag(ctx, "A", 1)
	assert.NoError(t, err)
	if assert.Len(t, pageA.Items, 1) {
		assert.Equal(t, blog.ID, pageA.Items[0].ID)
	}

	pageB, err := service.FilterByTag(ctx, "B", 1)
	assert.NoError(t, err)
	if assert.Len(t, pageB.Items, 1) {
		assert.Equal(t, blog.ID, pageB.Items[0].ID)
	}

	pageC, err := service.FilterByTag(ctx, "C", 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, pageC)
}

func TestTagFilterDuplicateLink(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	blogRepo := &memBlogRepo{s: store}
	tagRepo := &memTagRepo{s: store}

	tagA := &model.Tag{Name: "A"}
	assert.NoError(t, tagRepo.Create(ctx, tagA))

	blog := &model.Blog{Title: "tagged", Content: "body", UserID: 1}
	assert.NoError(t, blogRepo.Create(ctx, blog))

	// blog_tags carries no uniqueness constraint, so the same pair can be
	// inserted twice. The blog must still appear once with Total 1.
	store.links = append(store.links,
		model.BlogTag{ID: 1, BlogID: blog.ID, TagID: tagA.ID},
		model.BlogTag{ID: 2, BlogID: blog.ID, TagID: tagA.ID},
	)

	service := NewContentService(blogRepo, tagRepo, new(MockCommentRepository))

	page, err := service.FilterByTag(ctx, "A", 1)
	assert.NoError(t, err)
	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, blog.ID, page.Items[0].ID)
	}
	assert.Equal(t, int64(1), page.Total)
}
