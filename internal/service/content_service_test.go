package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/auth"
	apperrors "github.com/icemanhv/forum/internal/errors"
	"github.com/icemanhv/forum/internal/model"
)

// MockBlogRepository is a mock implementation of BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id uint) (*model.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListPage(ctx context.Context, offset, limit int) ([]model.Blog, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Blog), args.Error(1)
}

func (m *MockBlogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) ListPageByTag(ctx context.Context, tagID uint, offset, limit int) ([]model.Blog, error) {
	args := m.Called(ctx, tagID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Blog), args.Error(1)
}

func (m *MockBlogRepository) CountByTag(ctx context.Context, tagID uint) (int64, error) {
	args := m.Called(ctx, tagID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTagRepository is a mock implementation of TagRepository.
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByBlog(ctx context.Context, blogID uint) ([]model.Comment, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func makeBlogs(n int) []model.Blog {
	blogs := make([]model.Blog, n)
	for i := range blogs {
		blogs[i] = model.Blog{
			ID:        uint(i + 1),
			Title:     "post",
			Content:   "content",
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		}
	}
	return blogs
}

func TestContentService_ListArticles(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		setupMock func(*MockBlogRepository)
		wantItems int
		wantPage  int
	}{
		{
			name: "first page holds at most five",
			page: 1,
			setupMock: func(m *MockBlogRepository) {
				m.On("ListPage", mock.Anything, 0, PageSize).Return(makeBlogs(5), nil)
				m.On("Count", mock.Anything).Return(int64(7), nil)
			},
			wantItems: 5,
			wantPage:  1,
		},
		{
			name: "page past the end is empty, not an error",
			page: 99,
			setupMock: func(m *MockBlogRepository) {
				m.On("ListPage", mock.Anything, 98*PageSize, PageSize).Return([]model.Blog{}, nil)
				m.On("Count", mock.Anything).Return(int64(7), nil)
			},
			wantItems: 0,
			wantPage:  99,
		},
		{
			name: "page below one clamps to the first page",
			page: 0,
			setupMock: func(m *MockBlogRepository) {
				m.On("ListPage", mock.Anything, 0, PageSize).Return(makeBlogs(2), nil)
				m.On("Count", mock.Anything).Return(int64(2), nil)
			},
			wantItems: 2,
			wantPage:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBlogs := new(MockBlogRepository)
			tt.setupMock(mockBlogs)

			service := NewContentService(mockBlogs, new(MockTagRepository), new(MockCommentRepository))
			page, err := service.ListArticles(context.Background(), tt.page)

			assert.NoError(t, err)
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, PageSize, page.PageSize)
			assert.LessOrEqual(t, len(page.Items), PageSize)

			// Ordering: creation time descending.
			assert.True(t, sort.SliceIsSorted(page.Items, func(i, j int) bool {
				return page.Items[i].CreatedAt.After(page.Items[j].CreatedAt)
			}))

			mockBlogs.AssertExpectations(t)
		})
	}
}

func TestContentService_FilterByTag(t *testing.T) {
	t.Run("unknown tag name is not found", func(t *testing.T) {
		mockTags := new(MockTagRepository)
		mockTags.On("FindByName", mock.Anything, "nonexistent").Return(nil, gorm.ErrRecordNotFound)

		service := NewContentService(new(MockBlogRepository), mockTags, new(MockCommentRepository))
		page, err := service.FilterByTag(context.Background(), "nonexistent", 1)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, page)
		mockTags.AssertExpectations(t)
	})

	t.Run("known tag pages its linked blogs", func(t *testing.T) {
		mockTags := new(MockTagRepository)
		mockTags.On("FindByName", mock.Anything, "go").Return(&model.Tag{ID: 3, Name: "go"}, nil)

		mockBlogs := new(MockBlogRepository)
		mockBlogs.On("ListPageByTag", mock.Anything, uint(3), 0, PageSize).Return(makeBlogs(2), nil)
		mockBlogs.On("CountByTag", mock.Anything, uint(3)).Return(int64(2), nil)

		service := NewContentService(mockBlogs, mockTags, new(MockCommentRepository))
		page, err := service.FilterByTag(context.Background(), "go", 1)

		assert.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, int64(2), page.Total)
		mockBlogs.AssertExpectations(t)
		mockTags.AssertExpectations(t)
	})
}

func TestContentService_GetArticle(t *testing.T) {
	mockBlogs := new(MockBlogRepository)
	mockBlogs.On("FindByID", mock.Anything, uint(1)).Return(&model.Blog{ID: 1, Content: "hi"}, nil)
	mockBlogs.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	mockComments := new(MockCommentRepository)
	mockComments.On("ListByBlog", mock.Anything, uint(1)).Return([]model.Comment{
		{ID: 1, Text: "first", BlogID: 1, User: &model.User{ID: 2, Name: "reader"}},
	}, nil)

	service := NewContentService(mockBlogs, new(MockTagRepository), mockComments)

	blog, err := service.GetArticle(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), blog.ID)
	if assert.Len(t, blog.Comments, 1) {
		assert.Equal(t, "first", blog.Comments[0].Text)
		assert.Equal(t, "reader", blog.Comments[0].User.Name)
	}

	blog, err = service.GetArticle(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, blog)
	mockComments.AssertExpectations(t)
}

func TestContentService_AddComment(t *testing.T) {
	session := &auth.Session{UserID: 7, Email: "a@x.com"}

	tests := []struct {
		name          string
		session       *auth.Session
		blogID        uint
		text          string
		setupMock     func(*MockBlogRepository, *MockCommentRepository)
		expectedError error
	}{
		{
			name:    "authenticated comment is appended",
			session: session,
			blogID:  1,
			text:    "nice post",
			setupMock: func(mBlogs *MockBlogRepository, mComments *MockCommentRepository) {
				mBlogs.On("FindByID", mock.Anything, uint(1)).Return(&model.Blog{ID: 1}, nil)
				mComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
			},
		},
		{
			name:          "anonymous caller is rejected and nothing is written",
			session:       nil,
			blogID:        1,
			text:          "nice post",
			setupMock:     func(*MockBlogRepository, *MockCommentRepository) {},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:          "blank text is a validation failure",
			session:       session,
			blogID:        1,
			text:          "   ",
			setupMock:     func(*MockBlogRepository, *MockCommentRepository) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:    "missing blog is not found",
			session: session,
			blogID:  404,
			text:    "nice post",
			setupMock: func(mBlogs *MockBlogRepository, mComments *MockCommentRepository) {
				mBlogs.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBlogs := new(MockBlogRepository)
			mockComments := new(MockCommentRepository)
			tt.setupMock(mockBlogs, mockComments)

			service := NewContentService(mockBlogs, new(MockTagRepository), mockComments)
			comment, err := service.AddComment(context.Background(), tt.session, tt.blogID, tt.text)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, comment)
				mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.session.UserID, comment.AuthorID)
				assert.Equal(t, tt.blogID, comment.BlogID)
				assert.Equal(t, tt.text, comment.Text)
				assert.WithinDuration(t, time.Now(), comment.Timestamp, time.Minute)
			}

			mockBlogs.AssertExpectations(t)
			mockComments.AssertExpectations(t)
		})
	}
}
