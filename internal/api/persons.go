package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/model"
)

// POST /persons
func CreatePersonHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in model.PersonCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidJSON(c)
			return
		}
		if errs := in.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		if in.UNI != nil && t.Persons.Any(uuid.Nil, uniMatches(*in.UNI)) {
			badRequest(c, model.Ferr(model.ErrUniqueViolation, "uni",
				"Person with this UNI already exists"))
			return
		}
		p := model.NewPerson(&in)
		if err := t.Persons.Insert(p.ID, p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// GET /persons?uni=&email=
func ListPersonsHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := t.Persons.List()
		if v := c.Query("uni"); v != "" {
			rows = narrow(rows, func(p model.Person) bool { return p.UNI != nil && *p.UNI == v })
		}
		if v := c.Query("email"); v != "" {
			rows = narrow(rows, func(p model.Person) bool { return p.Email == v })
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /persons/:id
func GetPersonHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Person")
		if !ok {
			return
		}
		p, err := t.Persons.Get(id)
		if err != nil {
			notFound(c, "Person")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// PATCH /persons/:id
func UpdatePersonHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Person")
		if !ok {
			return
		}
		var patch model.PersonUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			invalidJSON(c)
			return
		}
		if errs := patch.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		cur, err := t.Persons.Get(id)
		if err != nil {
			notFound(c, "Person")
			return
		}
		// UNI re-check only when the patch actually changes it.
		if patch.UNI.Set && !patch.UNI.Null {
			v := patch.UNI.Value
			if (cur.UNI == nil || *cur.UNI != v) && t.Persons.Any(id, uniMatches(v)) {
				badRequest(c, model.Ferr(model.ErrUniqueViolation, "uni",
					"Person with this UNI already exists"))
				return
			}
		}
		updated, err := t.Persons.Update(id, func(p model.Person) (model.Person, error) {
			patch.Apply(&p)
			return p, nil
		})
		if err != nil {
			notFound(c, "Person")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /persons/:id — hard delete, no referential check against orders.
func DeletePersonHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Person")
		if !ok {
			return
		}
		if err := t.Persons.Delete(id); err != nil {
			notFound(c, "Person")
			return
		}
		deleted(c, "Person")
	}
}

func uniMatches(v string) func(model.Person) bool {
	return func(p model.Person) bool { return p.UNI != nil && *p.UNI == v }
}
