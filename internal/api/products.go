package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

// POST /products
func CreateProductHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in model.ProductCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidJSON(c)
			return
		}
		if errs := in.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		if t.Products.Any(uuid.Nil, skuMatches(in.SKU)) {
			badRequest(c, model.Ferr(model.ErrUniqueViolation, "sku",
				"Product with this SKU already exists"))
			return
		}
		p := model.NewProduct(&in)
		if err := t.Products.Insert(p.ID, p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// GET /products?category=&sku=&is_active=&name=&min_price=&max_price=
func ListProductsHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := t.Products.List()
		if v := c.Query("category"); v != "" {
			rows = narrow(rows, func(p model.Product) bool { return strings.EqualFold(p.Category, v) })
		}
		if v := c.Query("sku"); v != "" {
			rows = narrow(rows, func(p model.Product) bool { return p.SKU == v })
		}
		if v := c.Query("is_active"); v != "" {
			want := v == "true"
			if v == "true" || v == "false" {
				rows = narrow(rows, func(p model.Product) bool { return p.IsActive == want })
			}
		}
		if v := c.Query("name"); v != "" {
			rows = narrow(rows, func(p model.Product) bool { return containsFold(p.Name, v) })
		}
		if v := c.Query("min_price"); v != "" {
			if min, err := decimal.NewFromString(v); err == nil {
				rows = narrow(rows, func(p model.Product) bool { return p.Price.GreaterThanOrEqual(min) })
			}
		}
		if v := c.Query("max_price"); v != "" {
			if max, err := decimal.NewFromString(v); err == nil {
				rows = narrow(rows, func(p model.Product) bool { return p.Price.LessThanOrEqual(max) })
			}
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /products/:id
func GetProductHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Product")
		if !ok {
			return
		}
		p, err := t.Products.Get(id)
		if err != nil {
			notFound(c, "Product")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// PATCH /products/:id
func UpdateProductHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Product")
		if !ok {
			return
		}
		var patch model.ProductUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			invalidJSON(c)
			return
		}
		if errs := patch.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		cur, err := t.Products.Get(id)
		if err != nil {
			notFound(c, "Product")
			return
		}
		// Patching the SKU to its current value is not a collision.
		if patch.SKU != nil && *patch.SKU != cur.SKU && t.Products.Any(id, skuMatches(*patch.SKU)) {
			badRequest(c, model.Ferr(model.ErrUniqueViolation, "sku",
				"Product with this SKU already exists"))
			return
		}
		updated, err := t.Products.Update(id, func(p model.Product) (model.Product, error) {
			patch.Apply(&p)
			return p, nil
		})
		if err != nil {
			notFound(c, "Product")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /products/:id — hard delete even when orders reference the product.
func DeleteProductHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Product")
		if !ok {
			return
		}
		if err := t.Products.Delete(id); err != nil {
			notFound(c, "Product")
			return
		}
		deleted(c, "Product")
	}
}

func skuMatches(sku string) func(model.Product) bool {
	return func(p model.Product) bool { return p.SKU == sku }
}
