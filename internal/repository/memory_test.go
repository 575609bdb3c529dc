package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marvel-backend/internal/models"
)

func TestInMemoryUsers_CreateAndGet(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	user := &models.User{Email: "a@b.com", Hash: "h", Salt: "s", Token: "t"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, *user, *got)

	_, err = repo.GetByEmail(ctx, "ghost@b.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryUsers_DuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "a@b.com"}))
	assert.ErrorIs(t, repo.Create(ctx, &models.User{Email: "a@b.com"}), ErrDuplicate)
}

func TestInMemoryUsers_ConcurrentSignupsKeepOne(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, &models.User{Email: "race@b.com"}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestInMemoryLikes_Lifecycle(t *testing.T) {
	repo := NewInMemoryLikeRepository()
	ctx := context.Background()

	for i, token := range []string{"a", "b", "a", "c", "a"} {
		like := &models.Like{Name: fmt.Sprint(i), Image: fmt.Sprintf("img%d", i), Token: token}
		require.NoError(t, repo.Create(ctx, like))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	byA, err := repo.ListByToken(ctx, "a")
	require.NoError(t, err)
	require.Len(t, byA, 3)
	for _, like := range byA {
		assert.Equal(t, "a", like.Token)
	}

	none, err := repo.ListByToken(ctx, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	deleted, err := repo.DeleteByImage(ctx, "img2")
	require.NoError(t, err)
	assert.Equal(t, "img2", deleted.Image)

	byA, err = repo.ListByToken(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, byA, 2)

	_, err = repo.DeleteByImage(ctx, "img2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryLikes_DuplicateImage(t *testing.T) {
	repo := NewInMemoryLikeRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Like{Image: "X"}))
	assert.ErrorIs(t, repo.Create(ctx, &models.Like{Image: "X"}), ErrDuplicate)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
