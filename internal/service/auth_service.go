package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.Session, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	// VerifyToken はセッションミドルウェアから呼ばれます
	VerifyToken(ctx context.Context, token string) (*model.Principal, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup はユーザーを作成し、そのままセッションを発行します
func (s *authService) Signup(ctx context.Context, req *model.SignupRequest) (*model.Session, error) {
	email := normalizeEmail(req.Email)
	logger := middleware.GetLogger(ctx).With("email", email)

	_, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err == nil {
		logger.Warn("Signup failed: email already exists")
		return nil, model.NewAppError("DUPLICATE_EMAIL", "User with this email already exists", "email", model.ErrConflict)
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Signup failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create account", "", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create account", "", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		// 同時登録は一意制約で検知される
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Conflict during user creation (race condition)", "error", err)
			return nil, model.NewAppError("DUPLICATE_EMAIL", "User with this email already exists", "email", model.ErrConflict)
		}
		logger.Error("Failed to create user in DB", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create account", "", err)
	}

	session, err := s.issueSession(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create session", "", err)
	}
	logger.Info("User signed up", "user_id", user.ID)
	return session, nil
}

// Login はメールアドレスとパスワードを検証してセッションを発行します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error) {
	email := normalizeEmail(req.Email)
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid email or password", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to log in", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid email or password", "", model.ErrUnauthorized)
	}

	session, err := s.issueSession(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create session", "", err)
	}
	logger.Info("Login successful", "user_id", user.ID)
	return session, nil
}

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load user", "", err)
	}
	return user, nil
}

func (s *authService) VerifyToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(config.AppName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, model.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject", model.ErrUnauthorized)
	}
	return &model.Principal{UserID: userID, Email: claims.Email}, nil
}

// issueSession はユーザーIDを sub に持つ HS256 トークンを作ります
func (s *authService) issueSession(user *model.User) (*model.Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.JWT.AccessTokenTTL)
	claims := &model.SessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return nil, err
	}
	return &model.Session{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}
