package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ContextKey string

const (
	PrincipalKey ContextKey = "principal"
)

// Principal は認証済みリクエストの主体
type Principal struct {
	UserID uuid.UUID
	Email  string
}

// SignupRequest は新規登録APIのリクエストボディ
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session は発行済みのセッショントークン
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// SessionClaims はJWTに含めるクレーム。sub にユーザーIDを入れる
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
