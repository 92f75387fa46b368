package middleware

import (
	"context"
	"net/http"
	"strings"

	"pincart/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey       = "user_id"       // int
	CtxSessionTokenKey = "session_token" // string
)

// tokenクッキーの名前（Bearerヘッダでも同じトークンを受ける）
const TokenCookieName = "token"

// セッショントークンをユーザーに解決できる約束
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (usecase.UserDTO, error)
}

// AuthSession は不透明トークンをストア上のセッションに突き合わせる。
// 解決できたらuser_idとトークンをcontextへ保存する。
func AuthSession(auth TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			user, err := auth.ResolveToken(c.Request().Context(), token)
			if err != nil {
				//失効・偽造トークンも内部エラーも外へは401で返す
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxUserIDKey, user.ID)
			c.Set(CtxSessionTokenKey, token)
			return next(c)
		}
	}
}

// クッキー優先、無ければAuthorization: Bearer
func tokenFromRequest(c echo.Context) string {
	if ck, err := c.Cookie(TokenCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	authz := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
