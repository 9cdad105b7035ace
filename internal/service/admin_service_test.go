package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/icemanhv/forum/internal/errors"
	"github.com/icemanhv/forum/internal/model"
	"github.com/icemanhv/forum/internal/repository"
	"github.com/icemanhv/forum/internal/schema"
)

// MockEntityStore is a mock implementation of EntityStore.
type MockEntityStore struct {
	mock.Mock
}

func (m *MockEntityStore) Create(ctx context.Context, table string, form url.Values) (model.Entity, error) {
	args := m.Called(ctx, table, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Entity), args.Error(1)
}

func (m *MockEntityStore) List(ctx context.Context, table string) ([]repository.Row, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Row), args.Error(1)
}

func (m *MockEntityStore) GetByID(ctx context.Context, table string, id uint) (repository.Row, error) {
	args := m.Called(ctx, table, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Row), args.Error(1)
}

func TestAdminService_ListTables(t *testing.T) {
	service := NewAdminService(schema.NewRegistry(), new(MockEntityStore))
	assert.Equal(t, []string{"users", "blog", "comments", "tag", "blog_tags"}, service.ListTables())
}

func TestAdminService_ListTable(t *testing.T) {
	t.Run("unknown table", func(t *testing.T) {
		service := NewAdminService(schema.NewRegistry(), new(MockEntityStore))
		view, err := service.ListTable(context.Background(), "payments")
		assert.ErrorIs(t, err, apperrors.ErrUnknownTable)
		assert.Nil(t, view)
	})

	t.Run("foreign-key fields get the referenced row sets", func(t *testing.T) {
		mockStore := new(MockEntityStore)
		mockStore.On("List", mock.Anything, "comments").Return([]repository.Row{{"id": 1, "text": "hi"}}, nil)
		mockStore.On("List", mock.Anything, "users").Return([]repository.Row{{"id": 1, "name": "admin"}}, nil)
		mockStore.On("List", mock.Anything, "blog").Return([]repository.Row{{"id": 1, "title": "post"}}, nil)

		service := NewAdminService(schema.NewRegistry(), mockStore)
		view, err := service.ListTable(context.Background(), "comments")

		assert.NoError(t, err)
		assert.Equal(t, "comments", view.Table)
		assert.Len(t, view.Rows, 1)
		// comments has two foreign keys: author_id -> users, blog_id -> blog.
		assert.Len(t, view.FKOptions, 2)
		assert.Len(t, view.FKOptions["author_id"], 1)
		assert.Len(t, view.FKOptions["blog_id"], 1)
		mockStore.AssertExpectations(t)
	})
}

func TestAdminService_CreateRow(t *testing.T) {
	form := url.Values{"name": {"go"}}

	mockStore := new(MockEntityStore)
	mockStore.On("Create", mock.Anything, "tag", form).Return(&model.Tag{ID: 1, Name: "go"}, nil)

	service := NewAdminService(schema.NewRegistry(), mockStore)
	row, err := service.CreateRow(context.Background(), "tag", form)

	assert.NoError(t, err)
	assert.Equal(t, &model.Tag{ID: 1, Name: "go"}, row)
	mockStore.AssertExpectations(t)
}
