package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/rs/cors"
)

type MiddlewareConfig struct {
	AllowedOrigins []string
	// RequestsPerMinute is counted per client IP, zero disables the limit.
	RequestsPerMinute int
}

// Wrap puts the browser facing concerns in front of h: CORS for the UI
// that runs on another origin and a per IP request limit.
func Wrap(h http.Handler, conf MiddlewareConfig) http.Handler {
	if conf.RequestsPerMinute > 0 {
		h = httprate.LimitByIP(conf.RequestsPerMinute, time.Minute)(h)
	}

	origins := conf.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(h)
}
