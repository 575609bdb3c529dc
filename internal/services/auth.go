package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"marvel-backend/internal/models"
	"marvel-backend/internal/repository"
	"marvel-backend/internal/utils"
)

const (
	SaltLength  = 16
	TokenLength = 32

	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	utils.LogSuccess("AuthService", "Инициализирован сервис аутентификации")
	return &AuthService{users: users}
}

// HashPassword - base64(SHA-256(password + salt)), формат хеша в таблице users.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// GenerateToken возвращает случайную строку из [A-Za-z0-9] длины n.
func GenerateToken(n int) (string, error) {
	limit := big.NewInt(int64(len(tokenAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("ошибка генерации случайного числа: %w", err)
		}
		buf[i] = tokenAlphabet[idx.Int64()]
	}
	return string(buf), nil
}

// Signup создаёт пользователя и возвращает его постоянный токен.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		utils.LogWarning("AuthService", "Отсутствуют email или пароль")
		return "", ErrMissingParameters
	}

	utils.LogInfo("AuthService", fmt.Sprintf("Регистрация пользователя: %s", email))

	salt, err := GenerateToken(SaltLength)
	if err != nil {
		return "", err
	}
	token, err := GenerateToken(TokenLength)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email: email,
		Hash:  HashPassword(password, salt),
		Salt:  salt,
		Token: token,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrDuplicateEmail
		}
		utils.LogError("AuthService", fmt.Sprintf("Ошибка создания пользователя %s", email), err)
		return "", err
	}

	utils.LogSuccess("AuthService", fmt.Sprintf("Пользователь зарегистрирован: %s", email))
	return user.Token, nil
}

// Login возвращает сохранённый токен. Неизвестный email и неверный пароль
// дают одну и ту же ошибку ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	utils.LogInfo("AuthService", fmt.Sprintf("Попытка входа пользователя: %s", email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		utils.LogError("AuthService", "Ошибка поиска пользователя", err)
		return "", err
	}

	candidate := HashPassword(password, user.Salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(user.Hash)) != 1 {
		utils.LogWarning("AuthService", fmt.Sprintf("Неверный пароль для пользователя: %s", email))
		return "", ErrInvalidCredentials
	}

	utils.LogSuccess("AuthService", fmt.Sprintf("Пользователь вошёл: %s", email))
	return user.Token, nil
}
