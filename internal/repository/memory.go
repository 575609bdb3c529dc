package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"marvel-backend/internal/models"
)

// InMemoryUserRepository - хранилище пользователей в памяти процесса (STORAGE=memory, тесты).
type InMemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{byEmail: make(map[string]models.User)}
}

func (r *InMemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return ErrDuplicate
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.byEmail[user.Email] = *user
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byEmail[email]
	if !exists {
		return nil, ErrNotFound
	}
	return &user, nil
}

// InMemoryLikeRepository хранит лайки в порядке вставки.
type InMemoryLikeRepository struct {
	mu    sync.RWMutex
	likes []models.Like
}

func NewInMemoryLikeRepository() *InMemoryLikeRepository {
	return &InMemoryLikeRepository{}
}

func (r *InMemoryLikeRepository) Create(_ context.Context, like *models.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.likes {
		if existing.Image == like.Image {
			return ErrDuplicate
		}
	}
	if like.ID == "" {
		like.ID = uuid.NewString()
	}
	r.likes = append(r.likes, *like)
	return nil
}

func (r *InMemoryLikeRepository) List(_ context.Context) ([]models.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Like, len(r.likes))
	copy(out, r.likes)
	return out, nil
}

func (r *InMemoryLikeRepository) ListByToken(_ context.Context, token string) ([]models.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Like, 0)
	for _, like := range r.likes {
		if like.Token == token {
			out = append(out, like)
		}
	}
	return out, nil
}

func (r *InMemoryLikeRepository) DeleteByImage(_ context.Context, image string) (*models.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, like := range r.likes {
		if like.Image == image {
			r.likes = append(r.likes[:i], r.likes[i+1:]...)
			return &like, nil
		}
	}
	return nil, ErrNotFound
}
