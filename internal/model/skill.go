package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SkillCategory string

const (
	SkillOffensive SkillCategory = "offensive"
	SkillDefensive SkillCategory = "defensive"
	SkillUtility   SkillCategory = "utility"
	SkillBuff      SkillCategory = "buff"
	SkillDebuff    SkillCategory = "debuff"
	SkillSummon    SkillCategory = "summon"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case SkillOffensive, SkillDefensive, SkillUtility, SkillBuff, SkillDebuff, SkillSummon:
		return true
	}
	return false
}

type TargetType string

const (
	TargetSelf         TargetType = "self"
	TargetSingleEnemy  TargetType = "single_enemy"
	TargetSingleAlly   TargetType = "single_ally"
	TargetAreaEnemy    TargetType = "area_enemy"
	TargetAreaAlly     TargetType = "area_ally"
	TargetGroundTarget TargetType = "ground_target"
)

func (t TargetType) Valid() bool {
	switch t {
	case TargetSelf, TargetSingleEnemy, TargetSingleAlly, TargetAreaEnemy, TargetAreaAlly, TargetGroundTarget:
		return true
	}
	return false
}

// Skill is an ability entry. Names are unique across the collection.
type Skill struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      SkillCategory   `json:"category"`
	TargetType    TargetType      `json:"target_type"`
	EnergyCost    int             `json:"energy_cost"`
	Cooldown      decimal.Decimal `json:"cooldown"`
	CastRange     int             `json:"cast_range"`
	AreaOfEffect  int             `json:"area_of_effect"`
	BaseDamage    int             `json:"base_damage"`
	Duration      decimal.Decimal `json:"duration"`
	UpgradeLevel  int             `json:"upgrade_level"`
	Prerequisites *string         `json:"prerequisites"`
	Description   *string         `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type SkillCreate struct {
	Name          string           `json:"name" yaml:"name"`
	Category      SkillCategory    `json:"category" yaml:"category"`
	TargetType    TargetType       `json:"target_type" yaml:"target_type"`
	EnergyCost    *int             `json:"energy_cost" yaml:"energy_cost"`
	Cooldown      *decimal.Decimal `json:"cooldown" yaml:"-"`
	CastRange     *int             `json:"cast_range" yaml:"cast_range"`
	AreaOfEffect  *int             `json:"area_of_effect" yaml:"area_of_effect"`
	BaseDamage    *int             `json:"base_damage" yaml:"base_damage"`
	Duration      *decimal.Decimal `json:"duration" yaml:"-"`
	UpgradeLevel  *int             `json:"upgrade_level" yaml:"upgrade_level"`
	Prerequisites *string          `json:"prerequisites" yaml:"prerequisites"`
	Description   *string          `json:"description" yaml:"description"`
}

func (s *SkillCreate) Validate() []FieldError {
	var errs []FieldError
	errs = checkRequired(errs, "name", s.Name)
	errs = checkMaxLen(errs, "name", s.Name, 100)
	if s.Category == "" {
		errs = append(errs, Ferr(ErrRequired, "category", "Field 'category' is required"))
	} else if !s.Category.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "category", "Invalid value for 'category'"))
	}
	if s.TargetType == "" {
		errs = append(errs, Ferr(ErrRequired, "target_type", "Field 'target_type' is required"))
	} else if !s.TargetType.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "target_type", "Invalid value for 'target_type'"))
	}
	if s.EnergyCost == nil {
		errs = append(errs, Ferr(ErrRequired, "energy_cost", "Field 'energy_cost' is required"))
	} else if *s.EnergyCost < 0 {
		errs = append(errs, Ferr(ErrRangeInvalid, "energy_cost", "Field 'energy_cost' must be non-negative"))
	}
	if s.Cooldown == nil {
		errs = append(errs, Ferr(ErrRequired, "cooldown", "Field 'cooldown' is required"))
	} else {
		errs = checkDecimal(errs, "cooldown", *s.Cooldown, true, 1)
	}
	if s.CastRange == nil {
		errs = append(errs, Ferr(ErrRequired, "cast_range", "Field 'cast_range' is required"))
	} else if *s.CastRange < 0 {
		errs = append(errs, Ferr(ErrRangeInvalid, "cast_range", "Field 'cast_range' must be non-negative"))
	}
	errs = checkIntField(errs, "area_of_effect", s.AreaOfEffect, false, true)
	errs = checkIntField(errs, "base_damage", s.BaseDamage, false, true)
	if s.Duration != nil {
		errs = checkDecimal(errs, "duration", *s.Duration, true, 1)
	}
	if s.UpgradeLevel != nil && (*s.UpgradeLevel < 1 || *s.UpgradeLevel > 5) {
		errs = append(errs, Ferr(ErrRangeInvalid, "upgrade_level", "Field 'upgrade_level' must be between 1 and 5"))
	}
	if s.Prerequisites != nil {
		errs = checkMaxLen(errs, "prerequisites", *s.Prerequisites, 200)
	}
	if s.Description != nil {
		errs = checkMaxLen(errs, "description", *s.Description, 1000)
	}
	return errs
}

func NewSkill(in *SkillCreate) Skill {
	now := time.Now().UTC()
	duration := decimal.Zero
	if in.Duration != nil {
		duration = *in.Duration
	}
	level := 1
	if in.UpgradeLevel != nil {
		level = *in.UpgradeLevel
	}
	return Skill{
		ID:            uuid.New(),
		Name:          in.Name,
		Category:      in.Category,
		TargetType:    in.TargetType,
		EnergyCost:    intOrZero(in.EnergyCost),
		Cooldown:      *in.Cooldown,
		CastRange:     intOrZero(in.CastRange),
		AreaOfEffect:  intOrZero(in.AreaOfEffect),
		BaseDamage:    intOrZero(in.BaseDamage),
		Duration:      duration,
		UpgradeLevel:  level,
		Prerequisites: in.Prerequisites,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type SkillUpdate struct {
	Name          *string          `json:"name"`
	Category      *SkillCategory   `json:"category"`
	TargetType    *TargetType      `json:"target_type"`
	EnergyCost    *int             `json:"energy_cost"`
	Cooldown      *decimal.Decimal `json:"cooldown"`
	CastRange     *int             `json:"cast_range"`
	AreaOfEffect  *int             `json:"area_of_effect"`
	BaseDamage    *int             `json:"base_damage"`
	Duration      *decimal.Decimal `json:"duration"`
	UpgradeLevel  *int             `json:"upgrade_level"`
	Prerequisites Optional[string] `json:"prerequisites"`
	Description   Optional[string] `json:"description"`
}

func (u *SkillUpdate) Validate() []FieldError {
	var errs []FieldError
	if u.Name != nil {
		errs = checkRequired(errs, "name", *u.Name)
		errs = checkMaxLen(errs, "name", *u.Name, 100)
	}
	if u.Category != nil && !u.Category.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "category", "Invalid value for 'category'"))
	}
	if u.TargetType != nil && !u.TargetType.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "target_type", "Invalid value for 'target_type'"))
	}
	errs = checkIntField(errs, "energy_cost", u.EnergyCost, false, true)
	if u.Cooldown != nil {
		errs = checkDecimal(errs, "cooldown", *u.Cooldown, true, 1)
	}
	errs = checkIntField(errs, "cast_range", u.CastRange, false, true)
	errs = checkIntField(errs, "area_of_effect", u.AreaOfEffect, false, true)
	errs = checkIntField(errs, "base_damage", u.BaseDamage, false, true)
	if u.Duration != nil {
		errs = checkDecimal(errs, "duration", *u.Duration, true, 1)
	}
	if u.UpgradeLevel != nil && (*u.UpgradeLevel < 1 || *u.UpgradeLevel > 5) {
		errs = append(errs, Ferr(ErrRangeInvalid, "upgrade_level", "Field 'upgrade_level' must be between 1 and 5"))
	}
	if u.Prerequisites.Set && !u.Prerequisites.Null {
		errs = checkMaxLen(errs, "prerequisites", u.Prerequisites.Value, 200)
	}
	if u.Description.Set && !u.Description.Null {
		errs = checkMaxLen(errs, "description", u.Description.Value, 1000)
	}
	return errs
}

func (u *SkillUpdate) Apply(s *Skill) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.TargetType != nil {
		s.TargetType = *u.TargetType
	}
	if u.EnergyCost != nil {
		s.EnergyCost = *u.EnergyCost
	}
	if u.Cooldown != nil {
		s.Cooldown = *u.Cooldown
	}
	if u.CastRange != nil {
		s.CastRange = *u.CastRange
	}
	if u.AreaOfEffect != nil {
		s.AreaOfEffect = *u.AreaOfEffect
	}
	if u.BaseDamage != nil {
		s.BaseDamage = *u.BaseDamage
	}
	if u.Duration != nil {
		s.Duration = *u.Duration
	}
	if u.UpgradeLevel != nil {
		s.UpgradeLevel = *u.UpgradeLevel
	}
	if u.Prerequisites.Set {
		s.Prerequisites = u.Prerequisites.Ptr()
	}
	if u.Description.Set {
		s.Description = u.Description.Ptr()
	}
	s.UpdatedAt = time.Now().UTC()
}
