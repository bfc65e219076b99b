package repository

import (
	"context"
	"errors"

	"gridboard/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

type UserRepositoryInterface interface {
	FindByName(ctx context.Context, name string) (*model.User, error)
	CreateIfAbsent(ctx context.Context, name string) (*model.User, error)
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateIfAbsent is an idempotent get-or-create keyed by the unique name
// column. When two requests race on the same name, the loser's INSERT hits
// the unique constraint and it re-reads the winner's row instead of erroring.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, name string) (*model.User, error) {
	user, err := r.FindByName(ctx, name)
	if err != nil || user != nil {
		return user, err
	}

	user = &model.User{Name: name}
	err = r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.FindByName(ctx, name)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
