package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/models"
)

// UserRepository só lê; usado pelo diagnóstico de usuários.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
