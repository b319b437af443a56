package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/steadypay/hustle-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc HustleService, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := NewHandlers(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *Handlers) {
	// поиск и точечное чтение
	r.Get("/hustles", h.SearchHustles)
	r.Get("/hustles/{id}", h.HustleByID)

	// витринные каталоги
	r.Get("/categories", h.Categories)
	r.Get("/job-packs", h.JobPacks)

	// сохранённое пользователя
	r.Get("/users/{user_id}/saved-hustles", h.SavedHustles)
	r.Put("/users/{user_id}/saved-hustles/{hustle_id}", h.SaveHustle)
	r.Delete("/users/{user_id}/saved-hustles/{hustle_id}", h.UnsaveHustle)
}
