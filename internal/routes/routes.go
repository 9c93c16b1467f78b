package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hanikdev/storefront-golang/internal/handlers"
	"github.com/hanikdev/storefront-golang/internal/middleware"
	"github.com/hanikdev/storefront-golang/internal/store"
)

// SetupRouter wires the full API surface. The storefront is served to
// arbitrary origins, so CORS is wide open for the methods the API uses.
func SetupRouter(h *handlers.Handlers, s store.Store) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// --- Catalog (Public Read) ---
		api.GET("/products", h.ListProducts)

		// --- Protected Routes (Login Required) ---
		authed := api.Group("/")
		authed.Use(middleware.AuthMiddleware(s))
		{
			authed.POST("/orders", h.CreateOrder)
			authed.GET("/orders/my", h.GetMyOrders)
			authed.GET("/orders/:id", h.GetOrder)
			authed.PUT("/orders/:id", h.UpdateOrder)
		}

		// --- Admin-Only Routes ---
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(s))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.GET("/orders", h.GetAllOrders)
			admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
			admin.DELETE("/orders/:id", h.DeleteOrder)
		}
	}

	return router
}
