package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/config"
	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

type authClaims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues identity tokens and resolves them back to users.
// Every protected route trusts the user this service hands it.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ResolveToken(ctx context.Context, token string) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User, req *dto.UpdateProfileRequest) (*model.User, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.JWT) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		secret:   []byte(cfg.Secret),
		tokenTTL: time.Duration(cfg.TTLHours) * time.Hour,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        strings.ToLower(req.Email),
		Password:     string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         model.RoleUser,
		ReferralCode: uuid.NewString(),
		Favorites:    []string{},
		Preferences:  map[string]string{},
		Permissions:  model.Permissions{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authServiceImpl) ResolveToken(ctx context.Context, tokenString string) (*model.User, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authServiceImpl) UpdateProfile(ctx context.Context, user *model.User, req *dto.UpdateProfileRequest) (*model.User, error) {
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Favorites != nil {
		user.Favorites = req.Favorites
	}
	if req.Preferences != nil {
		user.Preferences = req.Preferences
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *authServiceImpl) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &authClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
