package service

import (
	"crypto/subtle"
	"log"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/pkg/auth"
)

// AdminRole — единственная роль с правом изменять данные
const AdminRole = "admin"

// AdminCredentials — учетные данные администратора из конфигурации.
// Если задан PasswordHash, пароль сверяется через bcrypt, иначе
// сравнивается открытым текстом (режим для локальной разработки).
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// AuthService предоставляет методы для аутентификации
type AuthService struct {
	creds      AdminCredentials
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(creds AdminCredentials, jwtService *auth.JWTService) *AuthService {
	if creds.PasswordHash == "" && creds.Password != "" {
		log.Println("[AuthService] Предупреждение: пароль администратора хранится открытым текстом, задайте bcrypt-хеш")
	}
	return &AuthService{creds: creds, jwtService: jwtService}
}

// Login проверяет учетные данные и возвращает подписанный токен
func (s *AuthService) Login(username, password string) (string, error) {
	if !s.validCredentials(username, password) {
		return "", apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid credentials")
	}

	token, err := s.jwtService.GenerateToken(s.creds.Username, AdminRole)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации токена: %v", err)
		return "", err
	}
	return token, nil
}

func (s *AuthService) validCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) != 1 {
		return false
	}
	if s.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
}
