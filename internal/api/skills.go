package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/model"
)

// POST /skills
func CreateSkillHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in model.SkillCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidJSON(c)
			return
		}
		if errs := in.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		if t.Skills.Any(uuid.Nil, skillNameMatches(in.Name)) {
			badRequest(c, model.Ferr(model.ErrUniqueViolation, "name",
				"Skill with this name already exists"))
			return
		}
		s := model.NewSkill(&in)
		if err := t.Skills.Insert(s.ID, s); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}

// GET /skills?category=&target_type=&name=&min_damage=&max_energy=&upgrade_level=
func ListSkillsHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := t.Skills.List()
		if v := c.Query("category"); v != "" {
			cat := model.SkillCategory(strings.ToLower(v))
			rows = narrow(rows, func(s model.Skill) bool { return s.Category == cat })
		}
		if v := c.Query("target_type"); v != "" {
			tt := model.TargetType(strings.ToLower(v))
			rows = narrow(rows, func(s model.Skill) bool { return s.TargetType == tt })
		}
		if v := c.Query("name"); v != "" {
			rows = narrow(rows, func(s model.Skill) bool { return containsFold(s.Name, v) })
		}
		if v := c.Query("min_damage"); v != "" {
			if min, err := strconv.Atoi(v); err == nil {
				rows = narrow(rows, func(s model.Skill) bool { return s.BaseDamage >= min })
			}
		}
		if v := c.Query("max_energy"); v != "" {
			if max, err := strconv.Atoi(v); err == nil {
				rows = narrow(rows, func(s model.Skill) bool { return s.EnergyCost <= max })
			}
		}
		if v := c.Query("upgrade_level"); v != "" {
			if lvl, err := strconv.Atoi(v); err == nil {
				rows = narrow(rows, func(s model.Skill) bool { return s.UpgradeLevel == lvl })
			}
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /skills/:id
func GetSkillHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Skill")
		if !ok {
			return
		}
		s, err := t.Skills.Get(id)
		if err != nil {
			notFound(c, "Skill")
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// PATCH /skills/:id
func UpdateSkillHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Skill")
		if !ok {
			return
		}
		var patch model.SkillUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			invalidJSON(c)
			return
		}
		if errs := patch.Validate(); len(errs) > 0 {
			badRequest(c, errs...)
			return
		}
		cur, err := t.Skills.Get(id)
		if err != nil {
			notFound(c, "Skill")
			return
		}
		if patch.Name != nil && *patch.Name != cur.Name && t.Skills.Any(id, skillNameMatches(*patch.Name)) {
			badRequest(c, model.Ferr(model.ErrUniqueViolation, "name",
				"Skill with this name already exists"))
			return
		}
		updated, err := t.Skills.Update(id, func(s model.Skill) (model.Skill, error) {
			patch.Apply(&s)
			return s, nil
		})
		if err != nil {
			notFound(c, "Skill")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /skills/:id
func DeleteSkillHandler(t *Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Skill")
		if !ok {
			return
		}
		if err := t.Skills.Delete(id); err != nil {
			notFound(c, "Skill")
			return
		}
		deleted(c, "Skill")
	}
}

func skillNameMatches(name string) func(model.Skill) bool {
	return func(s model.Skill) bool { return s.Name == name }
}
