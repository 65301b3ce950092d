package routes

import (
	"time"

	"farmlink_front_end/internal/config"
	"farmlink_front_end/internal/handlers"
	"farmlink_front_end/internal/handlers/admin"
	"farmlink_front_end/internal/handlers/farmer"
	"farmlink_front_end/internal/handlers/ws"
	"farmlink_front_end/internal/middleware"
	"farmlink_front_end/internal/models"
	"farmlink_front_end/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth            *handlers.AuthHandler
	Catalog         *handlers.CatalogHandler
	Cart            *handlers.CartHandler
	AdminCategories *admin.CategoryHandler
	AdminProducts   *admin.ProductHandler
	AdminUsers      *admin.UserHandler
	FarmerProducts  *farmer.ProductHandler
	CartSocket      *ws.CartSocket
}

func RegisterRoutes(r *gin.Engine, resolver *session.Resolver, h Handlers) {
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.WithSession(resolver))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/session", h.Auth.Session)
			auth.GET("/google", h.Auth.GoogleRedirect)
		}

		// catalogue public : accessible sans session
		api.GET("/products", h.Catalog.Products)

		cart := api.Group("/cart", middleware.RequireAuth(), middleware.RequireRole(models.RoleBuyer))
		{
			cart.GET("", h.Cart.Get)
			cart.POST("/items", h.Cart.Add)
			cart.PUT("/items/:id", h.Cart.UpdateQuantity)
			cart.DELETE("/items/:id", h.Cart.Remove)
		}

		adminGroup := api.Group("/admin", middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin))
		{
			categories := adminGroup.Group("/categories")
			{
				categories.GET("", h.AdminCategories.List)
				categories.POST("", h.AdminCategories.Create)
				categories.PUT("/:id", h.AdminCategories.Update)
				categories.DELETE("/:id", h.AdminCategories.Delete)
			}

			products := adminGroup.Group("/products")
			{
				products.GET("", h.AdminProducts.List)
				products.POST("/add", h.AdminProducts.Create)
				products.GET("/:id", h.AdminProducts.Get)
				products.PUT("/:id", h.AdminProducts.Update)
				products.DELETE("/:id", h.AdminProducts.Delete)
			}

			users := adminGroup.Group("/users")
			{
				users.GET("/farmers", h.AdminUsers.Farmers)
				users.GET("/buyers", h.AdminUsers.Buyers)
				users.DELETE("/:id", h.AdminUsers.Delete)
			}
		}

		farmerGroup := api.Group("/farmer", middleware.RequireAuth(), middleware.RequireRole(models.RoleFarmer))
		{
			farmerGroup.GET("/products", h.FarmerProducts.List)
			farmerGroup.POST("/products", h.FarmerProducts.Add)
			farmerGroup.PUT("/products/:id/stock", h.FarmerProducts.UpdateStock)
			farmerGroup.PUT("/products/:id/bargain-price", h.FarmerProducts.UpdateBargainPrice)
		}
	}

	r.GET("/ws/cart", middleware.RequireAuth(), middleware.RequireRole(models.RoleBuyer), h.CartSocket.Handle)
}
