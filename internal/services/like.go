package services

import (
	"context"
	"errors"
	"fmt"

	"marvel-backend/internal/models"
	"marvel-backend/internal/repository"
	"marvel-backend/internal/utils"
)

type LikeStore interface {
	Create(ctx context.Context, like *models.Like) error
	List(ctx context.Context) ([]models.Like, error)
	ListByToken(ctx context.Context, token string) ([]models.Like, error)
	DeleteByImage(ctx context.Context, image string) (*models.Like, error)
}

type LikeService struct {
	likes LikeStore
}

func NewLikeService(likes LikeStore) *LikeService {
	utils.LogSuccess("LikeService", "Инициализирован сервис лайков")
	return &LikeService{likes: likes}
}

// CreateLike сохраняет лайк. Токен не сверяется с пользователями.
func (s *LikeService) CreateLike(ctx context.Context, req models.CreateLikeRequest) (*models.Like, error) {
	if req.Image == "" {
		return nil, ErrMissingParameters
	}

	like := &models.Like{
		Name:  req.Name,
		Image: req.Image,
		Link:  req.Link,
		Token: req.Token,
	}

	if err := s.likes.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.LogWarning("LikeService", fmt.Sprintf("Лайк уже существует: %s", req.Image))
			return nil, ErrDuplicateLike
		}
		utils.LogError("LikeService", "Ошибка сохранения лайка", err)
		return nil, err
	}

	utils.LogSuccess("LikeService", fmt.Sprintf("Лайк сохранён: %s (ID: %s)", like.Name, like.ID))
	return like, nil
}

func (s *LikeService) ListAllLikes(ctx context.Context) ([]models.Like, error) {
	likes, err := s.likes.List(ctx)
	if err != nil {
		utils.LogError("LikeService", "Ошибка получения лайков", err)
		return nil, err
	}
	return nonNil(likes), nil
}

func (s *LikeService) ListLikesByToken(ctx context.Context, token string) ([]models.Like, error) {
	likes, err := s.likes.ListByToken(ctx, token)
	if err != nil {
		utils.LogError("LikeService", "Ошибка получения лайков по токену", err)
		return nil, err
	}

	utils.LogInfo("LikeService", fmt.Sprintf("Найдено лайков: %d", len(likes)))
	return nonNil(likes), nil
}

// DeleteLikeByImage возвращает удалённый лайк или nil, если совпадений нет.
func (s *LikeService) DeleteLikeByImage(ctx context.Context, image string) (*models.Like, error) {
	if image == "" {
		return nil, ErrMissingParameters
	}

	like, err := s.likes.DeleteByImage(ctx, image)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.LogInfo("LikeService", fmt.Sprintf("Лайк для удаления не найден: %s", image))
			return nil, nil
		}
		utils.LogError("LikeService", "Ошибка удаления лайка", err)
		return nil, err
	}

	utils.LogSuccess("LikeService", fmt.Sprintf("Лайк удалён: %s", image))
	return like, nil
}

func nonNil(likes []models.Like) []models.Like {
	if likes == nil {
		return []models.Like{}
	}
	return likes
}
