package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayhub-backend/models"
	"stayhub-backend/utils"
)

// AuthService handles registration, login and session verification.
type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{DB: db, JWTSecret: jwtSecret}
}

// Register creates a new account. The role is always BUYER; it cannot be
// chosen by the caller. Returns the user plus a fresh session token.
func (s *AuthService) Register(name, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", utils.ErrConflict("email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
		Role:     models.RoleBuyer,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.SignSessionToken(s.JWTSecret, user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and issues a session token. Both an unknown
// email and a wrong password answer with the same 401.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", utils.ErrUnauthenticated("invalid credentials")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", utils.ErrUnauthenticated("invalid credentials")
	}

	token, err := utils.SignSessionToken(s.JWTSecret, user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Authenticate resolves a session token to its user record.
func (s *AuthService) Authenticate(token string) (*models.User, error) {
	userID, _, err := utils.VerifySessionToken(s.JWTSecret, token)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrUnauthenticated("unknown user")
		}
		return nil, err
	}
	return &user, nil
}
