package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"julianmorley.ca/con-plar/shopvibe/pkg/global"
)

// InitEngine builds the gin engine with recovery, request logging and CORS.
func InitEngine(cfg global.Config, log logrus.FieldLogger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(log))

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return engine
}

// InitializeRoutes registers the storefront API on engine.
func InitializeRoutes(engine *gin.Engine, h *Handler) {
	api := engine.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/categories", h.GetAllCategories)

		products := api.Group("/products")
		{
			products.GET("", h.GetProducts)
			products.GET("/:id", h.GetProductByID)
		}

		api.POST("/sessions", h.CreateSession)

		sessions := api.Group("/sessions/:sessionId")
		sessions.Use(SessionMiddleware(h.Sessions))
		{
			sessions.GET("", h.GetSession)
			sessions.PUT("/category", h.SelectCategory)
			sessions.POST("/checkout", h.Checkout)

			cart := sessions.Group("/cart")
			{
				cart.POST("/items", h.AddToCart)
				cart.PUT("/items/:productId", h.UpdateCartItem)
				cart.DELETE("/items/:productId", h.RemoveFromCart)
				cart.POST("/open", h.OpenCart)
				cart.POST("/close", h.CloseCart)
			}

			sessions.POST("/wishlist/:productId", h.ToggleWishlist)
		}
	}
}
