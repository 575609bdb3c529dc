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

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	utils.LogSuccess("UserRepository", "Инициализирован репозиторий пользователей")
	return &UserRepository{db: db}
}

// Create сохраняет пользователя. Уникальность email обеспечивает индекс users_email_key,
// поэтому повторная регистрация возвращает ErrDuplicate без гонки "проверил-вставил".
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, email, hash, salt, token) VALUES ($1, $2, $3, $4, $5)`

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	utils.LogDB("CREATE USER", fmt.Sprintf("Создание пользователя: %s", user.Email))

	if _, err := r.db.Exec(ctx, query, user.ID, user.Email, user.Hash, user.Salt, user.Token); err != nil {
		if isUniqueViolation(err) {
			utils.LogWarning("UserRepository", fmt.Sprintf("Email уже занят: %s", user.Email))
			return ErrDuplicate
		}
		utils.LogError("UserRepository", fmt.Sprintf("Ошибка создания пользователя %s", user.Email), err)
		return fmt.Errorf("create user: %w", err)
	}

	utils.LogSuccess("UserRepository", fmt.Sprintf("Пользователь создан: %s (ID: %s)", user.Email, user.ID))
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, hash, salt, token FROM users WHERE email = $1`

	utils.LogDB("GET USER", fmt.Sprintf("Поиск пользователя: %s", email))

	user := &models.User{}
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.Hash, &user.Salt, &user.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.LogWarning("UserRepository", fmt.Sprintf("Пользователь не найден: %s", email))
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
