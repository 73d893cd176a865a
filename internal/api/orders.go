package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/model"
	"storefront/internal/service"
)

// POST /orders — all cross-entity gating lives in the order service.
func CreateOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in model.OrderCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidJSON(c)
			return
		}
		order, err := svc.Create(&in)
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				badRequest(c, verr.Errors...)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders?status=&customer_id=&order_number=&min_total=&max_total=
func ListOrdersHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := svc.List()
		if v := c.Query("status"); v != "" {
			status := model.OrderStatus(strings.ToLower(v))
			rows = narrow(rows, func(o model.Order) bool { return o.Status == status })
		}
		if v := c.Query("customer_id"); v != "" {
			if cid, err := uuid.Parse(v); err == nil {
				rows = narrow(rows, func(o model.Order) bool { return o.CustomerID == cid })
			}
		}
		if v := c.Query("order_number"); v != "" {
			rows = narrow(rows, func(o model.Order) bool { return o.OrderNumber == v })
		}
		if v := c.Query("min_total"); v != "" {
			if min, err := decimal.NewFromString(v); err == nil {
				rows = narrow(rows, func(o model.Order) bool { return o.TotalAmount.GreaterThanOrEqual(min) })
			}
		}
		if v := c.Query("max_total"); v != "" {
			if max, err := decimal.NewFromString(v); err == nil {
				rows = narrow(rows, func(o model.Order) bool { return o.TotalAmount.LessThanOrEqual(max) })
			}
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /orders/:id
func GetOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Order")
		if !ok {
			return
		}
		order, err := svc.Get(id)
		if err != nil {
			notFound(c, "Order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /orders/:id
func UpdateOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Order")
		if !ok {
			return
		}
		var patch model.OrderUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			invalidJSON(c)
			return
		}
		order, err := svc.Update(id, &patch)
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				badRequest(c, verr.Errors...)
				return
			}
			notFound(c, "Order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:id
func DeleteOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Order")
		if !ok {
			return
		}
		if err := svc.Delete(id); err != nil {
			notFound(c, "Order")
			return
		}
		deleted(c, "Order")
	}
}
