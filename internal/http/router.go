package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http/handlers"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http/middleware"
)

func BuildRouter(
	ah *handlers.AuthHandlers,
	ch *handlers.ContactHandlers,
	uh *handlers.UserHandlers,
	hh *handlers.HealthHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
	rl *middleware.RateLimitMW,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders: []string{"Authorization", "Content-Type"},
		}))
	}

	api := r.Group("/api")
	api.GET("/healthchecker", hh.Healthchecker)

	auth := api.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.GET("/confirmed_email/:token", ah.ConfirmedEmail)
	auth.POST("/request_email", ah.RequestEmail)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.POST("/reset-password/confirm", ah.ResetPasswordConfirm)

	contacts := api.Group("/contacts").Use(jwtmw.WithJWT(), cb.Enforce())
	contacts.GET("", ch.List)
	contacts.POST("", ch.Create)
	contacts.GET("/upcoming_birthdays", ch.UpcomingBirthdays)
	contacts.GET("/:id", ch.Get)
	contacts.PUT("/:id", ch.Update)
	contacts.DELETE("/:id", ch.Delete)

	users := api.Group("/users").Use(jwtmw.WithJWT(), cb.Enforce())
	users.GET("/me", rl.Limit(), uh.Me)
	users.PATCH("/avatar", uh.UpdateAvatar)

	return r
}
