package api

import (
	_ "fxconvert/docs"
	"fxconvert/internal/widget/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(widgetHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/", widgetHandler.Page)
	router.Post("/convert", widgetHandler.ConvertForm)

	router.Get("/api/v1/rates", widgetHandler.GetRates)
	router.Post("/api/v1/convert", widgetHandler.Convert)
	return router
}
