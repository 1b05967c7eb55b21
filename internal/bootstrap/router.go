package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/projeto-charter/charter-backend/internal/api/http"
	"github.com/projeto-charter/charter-backend/internal/api/http/middleware"
	chartershttp "github.com/projeto-charter/charter-backend/internal/charters/http"
	"github.com/projeto-charter/charter-backend/internal/charters/service"
	"github.com/projeto-charter/charter-backend/internal/web"
	"github.com/projeto-charter/charter-backend/internal/web/form"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	DB             httpapi.Pinger
	Charters       *service.CharterService
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	// FormClient posts the creation form; defaults to an APIClient on FormAPIBaseURL.
	FormClient     form.Client
	FormAPIBaseURL string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/projetos")
	chartershttp.New(dep.Charters).Register(api, middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))

	formClient := dep.FormClient
	if formClient == nil {
		formClient = form.NewAPIClient(dep.FormAPIBaseURL)
	}
	web.New(dep.Charters, formClient).Register(r)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
