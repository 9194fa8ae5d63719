package handlers

import (
	"errors"
	"net/http"
	"time"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/service"
	"go_vi_dict/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	cookie  config.AuthConfig
}

func NewAuthHandler(s service.AuthService, cookie config.AuthConfig) *AuthHandler {
	if cookie.CookieName == "" {
		cookie.CookieName = config.DefaultSessionCookieName
	}
	return &AuthHandler{service: s, cookie: cookie}
}

// sessionResponse はサインアップ/ログインのレスポンス。
// Cookie を使えないクライアント向けにトークンも返す
type sessionResponse struct {
	User      *model.UserResponse `json:"user"`
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

type userResponse struct {
	User *model.UserResponse `json:"user"`
}

// Signup は新規ユーザーを登録し、セッションCookieを発行します
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SignupRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid signup request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Signup rejected: email already registered")
		} else {
			logger.Error("Signup failed in service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	h.setSessionCookie(w, session)
	logger.Info("User signed up", "user_id", session.User.ID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, newSessionResponse(session), logger)
}

// Login は認証に成功するとセッションCookieを発行します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid login request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Warn("Login failed", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	h.setSessionCookie(w, session)
	logger.Info("User logged in", "user_id", session.User.ID.String())
	webutil.RespondWithJSON(w, http.StatusOK, newSessionResponse(session), logger)
}

// Logout はセッションCookieを削除します。トークン自体は失効させない
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	logger.Info("User logged out")
	webutil.RespondWithJSON(w, http.StatusOK, messageResponse{Message: "Logged out"}, logger)
}

// Me はログイン中のユーザー情報を返します
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), principal.UserID)
	if err != nil {
		logger.Warn("Failed to resolve session user", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, userResponse{User: model.NewUserResponse(user)}, logger)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func newSessionResponse(session *model.Session) sessionResponse {
	return sessionResponse{
		User:      model.NewUserResponse(session.User),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
}
