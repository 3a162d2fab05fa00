package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_records/internal/interfaces/http/handler"
)

func RegisterRoutes(
	r *gin.Engine,
	customers *handler.CustomerHandler,
	products *handler.ProductHandler,
	orders *handler.OrderHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/customers", customers.Create)
		api.POST("/customers/bulk", customers.BulkCreate)
		api.GET("/customers", customers.List)

		api.POST("/products", products.Create)
		api.GET("/products", products.List)

		api.POST("/orders", orders.Create)
		api.GET("/orders", orders.List)
	}
}
