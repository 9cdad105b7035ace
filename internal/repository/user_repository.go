package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/db"
	"github.com/icemanhv/forum/internal/model"
)

// UserRepository defines user persistence operations. Generic listing for
// the admin console goes through EntityStore, not here.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(gdb *gorm.DB) UserRepository {
	return &userRepository{db: gdb}
}

func (r *userRepository) conn(ctx context.Context) *gorm.DB {
	return db.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.conn(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.conn(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
