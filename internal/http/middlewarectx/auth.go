// Package middlewarectx содержит HTTP middleware сервиса: проверку JWT,
// доступ только для администраторов, ограничение частоты запросов и метрики.
//
// JWTMiddleware проверяет токен из заголовка Authorization и кладёт в контекст
// ID пользователя, его имя и признак администратора.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/foodgram/internal/http/response"
	"github.com/magabrotheeeer/foodgram/internal/lib/jwt"
	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID: ключ для ID пользователя в контексте
	UserID Key = "user_id"
	// User: ключ для имени пользователя в контексте
	User Key = "username"
	// IsStaff: ключ для признака администратора в контексте
	IsStaff Key = "is_staff"
)

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error)
}

// JWTMiddleware возвращает middleware, который требует валидный JWT в заголовке
// Authorization. Без токена или с невалидным токеном отвечает 401.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr, ok := bearerToken(r)
			if !ok {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}

			claims, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// OptionalJWTMiddleware кладёт данные пользователя в контекст, если запрос
// пришёл с валидным токеном, и пропускает анонимные запросы без изменений.
func OptionalJWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Debug("ignoring invalid token on public route",
					slog.String("request_id", middleware.GetReqID(r.Context())), sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// StaffOnly пропускает только администраторов. Должен стоять после JWTMiddleware.
func StaffOnly(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if staff, _ := r.Context().Value(IsStaff).(bool); !staff {
				log.Warn("staff access denied",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.Any("user_id", r.Context().Value(UserID)))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("staff access required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext возвращает ID аутентифицированного пользователя.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserID).(int64)
	return id, ok && id > 0
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

func withClaims(ctx context.Context, claims *jwt.CustomClaims) context.Context {
	ctx = context.WithValue(ctx, UserID, claims.UserID)
	ctx = context.WithValue(ctx, User, claims.Username)
	return context.WithValue(ctx, IsStaff, claims.IsStaff)
}
