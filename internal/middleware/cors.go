package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge кеширование preflight-ответов браузером, в секундах
const corsMaxAge = 600

// CORS создает middleware с полностью открытой политикой:
// API публичное, запросы разрешены с любых origin, любыми методами и заголовками
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, _ string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
