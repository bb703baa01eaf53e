package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/middleware"
	"stayhub-backend/models"
)

// SetupRouter wires middleware and the full route table.
func SetupRouter(
	cfg *config.Config,
	logr zerolog.Logger,
	ac *controllers.AuthController,
	pc *controllers.PropertyController,
	rc *controllers.ReservationController,
	adc *controllers.AdminController,
	cc *controllers.CategoryController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logr), middleware.Metrics())

	origins := cfg.CORSOriginList()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", middleware.MetricsHandler())

	authed := middleware.RequireAuth(cfg.JWTSecret)
	sellerOnly := middleware.RequireRoles(models.RoleSeller)
	buyerOnly := middleware.RequireRoles(models.RoleBuyer)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/logout", ac.Logout)
		auth.GET("/me", ac.Me)
	}

	r.GET("/categories", cc.List)

	properties := r.Group("/properties")
	{
		properties.GET("", pc.List)
		properties.GET("/:id", pc.Get)
		properties.POST("", authed, sellerOnly, pc.Create)
		properties.PATCH("/:id", authed, sellerOnly, pc.Update)
		properties.DELETE("/:id", authed, sellerOnly, pc.Delete)
	}

	reservations := r.Group("/reservations", authed, buyerOnly)
	{
		reservations.POST("", rc.Create)
		reservations.GET("/my", rc.ListMine)
		reservations.POST("/:id/cancel", rc.Cancel)
	}

	seller := r.Group("/seller", authed, sellerOnly)
	{
		seller.GET("/reservations", rc.ListForSeller)
		seller.PATCH("/reservations/:id/status", rc.UpdateStatus)
		seller.DELETE("/reservations/:id", rc.Delete)
	}

	admin := r.Group("/admin", authed, adminOnly)
	{
		admin.GET("/metrics", adc.Metrics)
		admin.GET("/reports/reservations", adc.ReservationsReport)
		admin.GET("/sellers", adc.Sellers)
	}

	return r
}
