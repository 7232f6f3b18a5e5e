package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"

	"github.com/oksasatya/go-employee-directory/internal/interface/middleware"
)

// CORSConfig allows every origin when origins is empty. Credentials are only
// allowed with an explicit origin list, browsers reject them with a wildcard.
func CORSConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
