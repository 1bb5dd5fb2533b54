package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/neuralforge-ai/consultation-api/docs" // swagger docs registration
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", h.Root)
	router.HandleFunc("GET /health", h.Health)
	router.HandleFunc("POST /api/consultation", h.SubmitConsultation)

	router.HandleFunc("/api/swagger/", httpSwagger.WrapHandler)

	return use(router, mw.Recover, mw.Cors, mw.Log)
}

func use(handler http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	return handler
}
