package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront/internal/service"
)

// NewRouter wires every collection's CRUD surface plus the health probe.
// Filters, validation, and uniqueness checks live in the handlers; the
// order routes go through OrderService for the cross-entity gating.
func NewRouter(t *Tables, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), gin.Recovery())

	orders := service.NewOrderService(t.Orders, t.Persons, t.Products, log)

	r.GET("/health", HealthHandler())
	r.GET("/health/:path_echo", HealthHandler())

	r.POST("/persons", CreatePersonHandler(t))
	r.GET("/persons", ListPersonsHandler(t))
	r.GET("/persons/:id", GetPersonHandler(t))
	r.PATCH("/persons/:id", UpdatePersonHandler(t))
	r.DELETE("/persons/:id", DeletePersonHandler(t))

	r.POST("/addresses", CreateAddressHandler(t))
	r.GET("/addresses", ListAddressesHandler(t))
	r.GET("/addresses/:id", GetAddressHandler(t))
	r.PATCH("/addresses/:id", UpdateAddressHandler(t))
	r.DELETE("/addresses/:id", DeleteAddressHandler(t))

	r.POST("/products", CreateProductHandler(t))
	r.GET("/products", ListProductsHandler(t))
	r.GET("/products/:id", GetProductHandler(t))
	r.PATCH("/products/:id", UpdateProductHandler(t))
	r.DELETE("/products/:id", DeleteProductHandler(t))

	r.POST("/orders", CreateOrderHandler(orders))
	r.GET("/orders", ListOrdersHandler(orders))
	r.GET("/orders/:id", GetOrderHandler(orders))
	r.PATCH("/orders/:id", UpdateOrderHandler(orders))
	r.DELETE("/orders/:id", DeleteOrderHandler(orders))

	r.POST("/units", CreateUnitHandler(t))
	r.GET("/units", ListUnitsHandler(t))
	r.GET("/units/:id", GetUnitHandler(t))
	r.PATCH("/units/:id", UpdateUnitHandler(t))
	r.DELETE("/units/:id", DeleteUnitHandler(t))

	r.POST("/skills", CreateSkillHandler(t))
	r.GET("/skills", ListSkillsHandler(t))
	r.GET("/skills/:id", GetSkillHandler(t))
	r.PATCH("/skills/:id", UpdateSkillHandler(t))
	r.DELETE("/skills/:id", DeleteSkillHandler(t))

	return r
}
