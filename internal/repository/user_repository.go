package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "cathub/internal/errors"
	"cathub/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.PostUser) (uint, error)
	Update(ctx context.Context, patch model.PutUser, id uint) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// List returns every user ordered by id.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("user_id").Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NotFound("no users found")
	}
	return users, nil
}

// FindByID returns a single user by primary key.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("no user found")
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns a single user by unique email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("no user found")
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and returns the generated id.
func (r *userRepository) Create(ctx context.Context, user *model.PostUser) (uint, error) {
	rec := model.User{
		UserName:     user.UserName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}
	res := r.db.WithContext(ctx).Create(&rec)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.BadRequest("no users added")
	}
	return rec.UserID, nil
}

// Update applies a sparse patch to one user. Role checks (self vs admin)
// happen in the calling layer; the statement itself only predicates on id.
func (r *userRepository) Update(ctx context.Context, patch model.PutUser, id uint) error {
	b := buildUserUpdate(patch, id)
	affected, err := b.Exec(ctx, r.db)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.BadRequest("no users updated")
	}
	return nil
}

func buildUserUpdate(patch model.PutUser, id uint) *updateBuilder {
	b := newUpdate("users")
	if patch.UserName != nil {
		b.Set("user_name", *patch.UserName)
	}
	if patch.Email != nil {
		b.Set("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		b.Set("password_hash", *patch.PasswordHash)
	}
	if patch.Role != nil {
		b.Set("role", *patch.Role)
	}
	b.Where("user_id = ?", id)
	return b
}

// Delete removes one user. Deletion is physical; owned cats go with the row
// via the store's cascading foreign key.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "user_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.BadRequest("no users deleted")
	}
	return nil
}
