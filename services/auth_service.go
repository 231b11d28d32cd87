package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vlad3958/HotelBooking/models"
)

// AuthService keeps the users table and token issuance together. The booking
// engine never sees it; handlers only pass along the user id from verified
// claims.
type AuthService struct {
	DB       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{
		DB:       db,
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
	}
}

// Register creates a regular user. Public registration never assigns a role
// other than User.
func (s *AuthService) Register(email, password string) (*models.User, error) {
	return s.createUser(email, password, models.RoleUser)
}

// CreateUser is the admin-only variant that may assign either role.
func (s *AuthService) CreateUser(email, password, role string) (*models.User, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		role = models.RoleUser
	}
	switch {
	case strings.EqualFold(role, models.RoleUser):
		role = models.RoleUser
	case strings.EqualFold(role, models.RoleAdmin):
		role = models.RoleAdmin
	default:
		return nil, ErrInvalidRole
	}
	return s.createUser(email, password, role)
}

func (s *AuthService) createUser(email, password, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Login verifies the password and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(&user)
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
