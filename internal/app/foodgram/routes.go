// Package foodgram собирает HTTP-приложение сервиса рецептов: маршруты,
// middleware, зависимости и жизненный цикл сервера.
package foodgram

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/foodgram/internal/config"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/admin/userread"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/admin/userupdate"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/health"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/idlist"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/ingredient/ingredientcreate"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/ingredient/ingredientlist"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/ingredient/ingredientread"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/recipe/amount"
	recipecreate "github.com/magabrotheeeer/foodgram/internal/http/handlers/recipe/create"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/recipe/ingredients"
	recipelist "github.com/magabrotheeeer/foodgram/internal/http/handlers/recipe/list"
	reciperead "github.com/magabrotheeeer/foodgram/internal/http/handlers/recipe/read"
	reciperemove "github.com/magabrotheeeer/foodgram/internal/http/handlers/recipe/remove"
	recipeupdate "github.com/magabrotheeeer/foodgram/internal/http/handlers/recipe/update"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/subscription/ids"
	sublist "github.com/magabrotheeeer/foodgram/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/subscription/subscribe"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/subscription/unsubscribe"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/tag/tagcreate"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/tag/taglist"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/tag/tagread"
	"github.com/magabrotheeeer/foodgram/internal/http/handlers/user/profile"
	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	adminservice "github.com/magabrotheeeer/foodgram/internal/services/admin"
	authservice "github.com/magabrotheeeer/foodgram/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/foodgram/internal/services/catalog"
	recipeservice "github.com/magabrotheeeer/foodgram/internal/services/recipe"
	subservice "github.com/magabrotheeeer/foodgram/internal/services/subscription"
)

// Services набор сервисов бизнес-логики, которые обслуживают маршруты.
type Services struct {
	Auth         *authservice.Service
	Subscription *subservice.Service
	Recipe       *recipeservice.Service
	Catalog      *catalogservice.Service
	Admin        *adminservice.Service
	DB           health.Pinger
}

// RouterOptions параметры маршрутов, не относящиеся к бизнес-логике.
type RouterOptions struct {
	RateLimit      config.RateLimit
	AuthRateLimit  config.AuthRateLimit
	AllowedOrigins []string
	MediaDir       string
	MediaURL       string
	Registry       *prometheus.Registry
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc Services, opts RouterOptions) {
	metrics := middlewarectx.NewMetrics(opts.Registry)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}),
		metrics.Middleware,
	)

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit.RPS), opts.RateLimit.Burst)

	r.Get("/health", health.New(logger, svc.DB).ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))

		// Регистрация и вход ограничены по IP
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(opts.AuthRateLimit.Requests, opts.AuthRateLimit.Window))
			r.Post("/auth/register", register.New(logger, svc.Auth).ServeHTTP)
			r.Post("/auth/login", login.New(logger, svc.Auth).ServeHTTP)
		})

		// Открытые конечные точки, токен необязателен
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.OptionalJWTMiddleware(svc.Auth, logger))
			r.Get("/tags", taglist.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/tags/ids", idlist.New(logger, "tags", svc.Catalog.AvailableTagIDs).ServeHTTP)
			r.Get("/tags/{id}", tagread.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/ingredients", ingredientlist.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/ingredients/ids", idlist.New(logger, "ingredients", svc.Catalog.AvailableIngredientIDs).ServeHTTP)
			r.Get("/ingredients/{id}", ingredientread.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/recipes", recipelist.New(logger, svc.Recipe).ServeHTTP)
			r.Get("/recipes/{id}", reciperead.New(logger, svc.Recipe).ServeHTTP)
			r.Get("/recipes/{id}/ingredients", ingredients.New(logger, svc.Recipe).ServeHTTP)
			r.Get("/recipes/{id}/ingredients/{ingredient_id}", amount.New(logger, svc.Recipe).ServeHTTP)
			r.Get("/users/{id}", profile.New(logger, svc.Subscription).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Post("/recipes", recipecreate.New(logger, svc.Recipe).ServeHTTP)
			r.Patch("/recipes/{id}", recipeupdate.New(logger, svc.Recipe).ServeHTTP)
			r.Delete("/recipes/{id}", reciperemove.New(logger, svc.Recipe).ServeHTTP)
			r.Get("/users/subscriptions", sublist.New(logger, svc.Subscription).ServeHTTP)
			r.Get("/users/subscriptions/ids", ids.New(logger, svc.Subscription).ServeHTTP)
			r.Post("/users/{id}/subscribe", subscribe.New(logger, svc.Subscription).ServeHTTP)
			r.Delete("/users/{id}/subscribe", unsubscribe.New(logger, svc.Subscription).ServeHTTP)

			// Только для администраторов
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.StaffOnly(logger))
				r.Post("/tags", tagcreate.New(logger, svc.Catalog).ServeHTTP)
				r.Post("/ingredients", ingredientcreate.New(logger, svc.Catalog).ServeHTTP)
				r.Get("/admin/users", userlist.New(logger, svc.Admin).ServeHTTP)
				r.Get("/admin/users/ids", idlist.New(logger, "users", svc.Admin.UserIDs).ServeHTTP)
				r.Get("/admin/users/{id}", userread.New(logger, svc.Admin).ServeHTTP)
				r.Patch("/admin/users/{id}", userupdate.New(logger, svc.Admin).ServeHTTP)
			})
		})
	})

	if opts.MediaDir != "" {
		prefix := mediaPath(opts.MediaURL) + "/"
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(opts.MediaDir))))
	}

	r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Timeout: 5 * time.Second}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// mediaPath возвращает путь, по которому раздаются файлы, из базового URL
// медиа (например, http://localhost:8080/media превращается в /media).
func mediaPath(baseURL string) string {
	path := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		path = u.Path
	}
	path = "/" + strings.Trim(path, "/")
	if path == "/" {
		return "/media"
	}
	return path
}
