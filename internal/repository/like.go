package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"marvel-backend/internal/models"
	"marvel-backend/internal/utils"
)

type LikeRepository struct {
	db DBTX
}

func NewLikeRepository(db DBTX) *LikeRepository {
	utils.LogSuccess("LikeRepository", "Инициализирован репозиторий лайков")
	return &LikeRepository{db: db}
}

// Create вставляет лайк; дубликат по image (индекс likes_image_key) даёт ErrDuplicate.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	query := `INSERT INTO likes (id, name, image, link, token) VALUES ($1, $2, $3, $4, $5)`

	if like.ID == "" {
		like.ID = uuid.NewString()
	}

	utils.LogDB("CREATE LIKE", fmt.Sprintf("Сохранение лайка: %s", like.Image))

	if _, err := r.db.Exec(ctx, query, like.ID, like.Name, like.Image, like.Link, like.Token); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create like: %w", err)
	}

	return nil
}

func (r *LikeRepository) List(ctx context.Context) ([]models.Like, error) {
	query := `SELECT id, name, image, link, token FROM likes ORDER BY created_at, id`

	utils.LogDB("LIST LIKES", "Все лайки")

	return r.query(ctx, query)
}

func (r *LikeRepository) ListByToken(ctx context.Context, token string) ([]models.Like, error) {
	query := `SELECT id, name, image, link, token FROM likes WHERE token = $1 ORDER BY created_at, id`

	utils.LogDB("LIST LIKES", fmt.Sprintf("Лайки по токену: %s", token))

	return r.query(ctx, query, token)
}

// DeleteByImage возвращает удалённую запись или ErrNotFound.
func (r *LikeRepository) DeleteByImage(ctx context.Context, image string) (*models.Like, error) {
	query := `DELETE FROM likes WHERE image = $1 RETURNING id, name, image, link, token`

	utils.LogDB("DELETE LIKE", fmt.Sprintf("Удаление лайка: %s", image))

	like := &models.Like{}
	err := r.db.QueryRow(ctx, query, image).Scan(&like.ID, &like.Name, &like.Image, &like.Link, &like.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete like: %w", err)
	}

	return like, nil
}

func (r *LikeRepository) query(ctx context.Context, query string, args ...any) ([]models.Like, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer rows.Close()

	likes := make([]models.Like, 0)
	for rows.Next() {
		var like models.Like
		if err := rows.Scan(&like.ID, &like.Name, &like.Image, &like.Link, &like.Token); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		likes = append(likes, like)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}

	return likes, nil
}
