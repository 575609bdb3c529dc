package handlers

import (
	"context"
	"errors"

	"marvel-backend/internal/models"
)

var errStoreDown = errors.New("connection refused")

type brokenLikeStore struct{}

func (brokenLikeStore) Create(context.Context, *models.Like) error { return errStoreDown }

func (brokenLikeStore) List(context.Context) ([]models.Like, error) { return nil, errStoreDown }

func (brokenLikeStore) ListByToken(context.Context, string) ([]models.Like, error) {
	return nil, errStoreDown
}

func (brokenLikeStore) DeleteByImage(context.Context, string) (*models.Like, error) {
	return nil, errStoreDown
}
