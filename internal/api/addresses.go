package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/model"
	"storefront/internal/store"
)

// POST /addresses — the client supplies the id, so duplicate detection
// happens at insert time rather than via a field scan.
func CreateAddressHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in model.AddressCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidJSON(c)
			return
		}
		if errs := in.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		a := model.NewAddress(&in)
		if err := t.Addresses.Insert(a.ID, a); err != nil {
			if errors.Is(err, store.ErrConflict) {
				badRequest(c, model.Ferr(model.ErrUniqueViolation, "id",
					"Address with this ID already exists"))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

// GET /addresses?city=&country=
func ListAddressesHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := t.Addresses.List()
		if v := c.Query("city"); v != "" {
			rows = narrow(rows, func(a model.Address) bool { return strings.EqualFold(a.City, v) })
		}
		if v := c.Query("country"); v != "" {
			rows = narrow(rows, func(a model.Address) bool { return strings.EqualFold(a.Country, v) })
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /addresses/:id
func GetAddressHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Address")
		if !ok {
			return
		}
		a, err := t.Addresses.Get(id)
		if err != nil {
			notFound(c, "Address")
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// PATCH /addresses/:id
func UpdateAddressHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Address")
		if !ok {
			return
		}
		var patch model.AddressUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			invalidJSON(c)
			return
		}
		if errs := patch.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		updated, err := t.Addresses.Update(id, func(a model.Address) (model.Address, error) {
			patch.Apply(&a)
			return a, nil
		})
		if err != nil {
			notFound(c, "Address")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /addresses/:id
func DeleteAddressHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Address")
		if !ok {
			return
		}
		if err := t.Addresses.Delete(id); err != nil {
			notFound(c, "Address")
			return
		}
		deleted(c, "Address")
	}
}
