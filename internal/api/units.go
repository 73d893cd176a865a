package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/model"
)

// POST /units — uniqueness is composite: the same unit name may exist
// once per race.
func CreateUnitHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in model.UnitCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidJSON(c)
			return
		}
		if errs := in.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		if t.Units.Any(uuid.Nil, nameRaceMatches(in.Name, in.Race)) {
			badRequest(c, model.Ferr(model.ErrUniqueViolation, "name",
				"Unit with this name already exists for this race"))
			return
		}
		u := model.NewUnit(&in)
		if err := t.Units.Insert(u.ID, u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// GET /units?race=&unit_type=&name=&min_cost=&max_cost=
func ListUnitsHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := t.Units.List()
		if v := c.Query("race"); v != "" {
			race := model.Race(strings.ToLower(v))
			rows = narrow(rows, func(u model.Unit) bool { return u.Race == race })
		}
		if v := c.Query("unit_type"); v != "" {
			ut := model.UnitType(strings.ToLower(v))
			rows = narrow(rows, func(u model.Unit) bool { return u.UnitType == ut })
		}
		if v := c.Query("name"); v != "" {
			rows = narrow(rows, func(u model.Unit) bool { return containsFold(u.Name, v) })
		}
		if v := c.Query("min_cost"); v != "" {
			if min, err := strconv.Atoi(v); err == nil {
				rows = narrow(rows, func(u model.Unit) bool { return u.MineralCost >= min })
			}
		}
		if v := c.Query("max_cost"); v != "" {
			if max, err := strconv.Atoi(v); err == nil {
				rows = narrow(rows, func(u model.Unit) bool { return u.MineralCost <= max })
			}
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /units/:id
func GetUnitHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Unit")
		if !ok {
			return
		}
		u, err := t.Units.Get(id)
		if err != nil {
			notFound(c, "Unit")
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// PATCH /units/:id
func UpdateUnitHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Unit")
		if !ok {
			return
		}
		var patch model.UnitUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			invalidJSON(c)
			return
		}
		if errs := patch.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		cur, err := t.Units.Get(id)
		if err != nil {
			notFound(c, "Unit")
			return
		}
		// The composite key may move via either field; check the
		// resulting pair against every other unit.
		name, race := cur.Name, cur.Race
		if patch.Name != nil {
			name = *patch.Name
		}
		if patch.Race != nil {
			race = *patch.Race
		}
		if (name != cur.Name || race != cur.Race) && t.Units.Any(id, nameRaceMatches(name, race)) {
			badRequest(c, model.Ferr(model.ErrUniqueViolation, "name",
				"Unit with this name already exists for this race"))
			return
		}
		updated, err := t.Units.Update(id, func(u model.Unit) (model.Unit, error) {
			patch.Apply(&u)
			return u, nil
		})
		if err != nil {
			notFound(c, "Unit")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /units/:id
func DeleteUnitHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Unit")
		if !ok {
			return
		}
		if err := t.Units.Delete(id); err != nil {
			notFound(c, "Unit")
			return
		}
		deleted(c, "Unit")
	}
}

func nameRaceMatches(name string, race model.Race) func(model.Unit) bool {
	return func(u model.Unit) bool { return u.Name == name && u.Race == race }
}
