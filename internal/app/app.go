package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/config"
	httpx "github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http/handlers"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http/middleware"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/infrastructure/database"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := database.AutoMigrate(container.DB); err != nil {
		return err
	}
	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc, cfg.BaseURL)
	contactH := handlers.NewContactHandlers(container.ContactSvc)
	userH := handlers.NewUserHandlers(container.UserSvc)
	healthH := handlers.NewHealthHandlers(container.DB)

	jwtMW := middleware.NewAuthMW(container.TokenSvc, container.SessionCache, container.UserRepo)
	casbinMW := middleware.NewCasbinMW(container.Enforcer)
	rateLimitMW := middleware.NewRateLimitMW(container.RedisClient, cfg.RateLimit, cfg.RateLimitWindow)

	r := httpx.BuildRouter(authH, contactH, userH, healthH, jwtMW, casbinMW, rateLimitMW, cfg.CORSOrigins)

	seedPolicies(container)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on first start.
func seedPolicies(c *Container) {
	policies, _ := c.Enforcer.GetPolicy()
	if len(policies) > 0 {
		return
	}
	c.Enforcer.AddPolicy("role_admin", "/api/*", "(GET|POST|PUT|PATCH|DELETE)")
	c.Enforcer.AddPolicy("role_user", "/api/contacts*", "(GET|POST|PUT|DELETE)")
	c.Enforcer.AddPolicy("role_user", "/api/users/me", "GET")
	c.Enforcer.AddPolicy("role_user", "/api/users/avatar", "PATCH")
	if err := c.Enforcer.SavePolicy(); err != nil {
		log.Printf("casbin: failed to persist seeded policies: %v", err)
		return
	}
	log.Println("casbin: seeded default policies")
}
