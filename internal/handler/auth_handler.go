package handler

import (
	"net/http"
	"time"

	"pincart/internal/config"
	"pincart/internal/middleware"
	"pincart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /auth のHTTP
type AuthHandler struct {
	uc           *usecase.AuthUsecase
	cookieSecure bool
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, cfg config.Config) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cfg.CookieSecure}
}

type registerRequest struct {
	FirstName string                `json:"first_name"`
	LastName  string                `json:"last_name"`
	Email     string                `json:"email"`
	Password  string                `json:"password"`
	Address   *usecase.AddressInput `json:"address,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  usecase.UserDTO `json:"user"`
	Token string          `json:"token"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
	e.POST("/auth/logout", h.logout, authMW)
}

// POST /auth/register
// 登録成功時はそのままセッションを張る（登録直後にログイン済みにする）
func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Address:   req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}

	sess, err := h.uc.CreateSession(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	h.setSessionCookie(c, sess.Token)
	return c.JSON(http.StatusCreated, authResponse{User: user, Token: sess.Token})
}

// POST /auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	sess, err := h.uc.CreateSession(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	h.setSessionCookie(c, sess.Token)
	return c.JSON(http.StatusOK, authResponse{User: user, Token: sess.Token})
}

// POST /auth/logout
func (h *AuthHandler) logout(c echo.Context) error {
	token, ok := getSessionTokenFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return writeError(c, err)
	}

	h.clearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
