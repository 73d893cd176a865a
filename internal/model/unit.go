package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Race string

const (
	RaceProtoss Race = "protoss"
	RaceTerran  Race = "terran"
	RaceZerg    Race = "zerg"
)

func (r Race) Valid() bool {
	switch r {
	case RaceProtoss, RaceTerran, RaceZerg:
		return true
	}
	return false
}

type UnitType string

const (
	UnitWorker   UnitType = "worker"
	UnitBasic    UnitType = "basic"
	UnitAdvanced UnitType = "advanced"
	UnitSupport  UnitType = "support"
	UnitHero     UnitType = "hero"
)

func (t UnitType) Valid() bool {
	switch t {
	case UnitWorker, UnitBasic, UnitAdvanced, UnitSupport, UnitHero:
		return true
	}
	return false
}

// Unit is a combat roster entry. Uniqueness is composite: no two units may
// share both name and race.
type Unit struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Race          Race            `json:"race"`
	UnitType      UnitType        `json:"unit_type"`
	HitPoints     int             `json:"hit_points"`
	Shields       int             `json:"shields"`
	AttackDamage  int             `json:"attack_damage"`
	Armor         int             `json:"armor"`
	MovementSpeed decimal.Decimal `json:"movement_speed"`
	MineralCost   int             `json:"mineral_cost"`
	GasCost       int             `json:"gas_cost"`
	SupplyCost    int             `json:"supply_cost"`
	BuildTime     int             `json:"build_time"`
	Description   *string         `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type UnitCreate struct {
	Name          string           `json:"name" yaml:"name"`
	Race          Race             `json:"race" yaml:"race"`
	UnitType      UnitType         `json:"unit_type" yaml:"unit_type"`
	HitPoints     *int             `json:"hit_points" yaml:"hit_points"`
	Shields       *int             `json:"shields" yaml:"shields"`
	AttackDamage  *int             `json:"attack_damage" yaml:"attack_damage"`
	Armor         *int             `json:"armor" yaml:"armor"`
	MovementSpeed *decimal.Decimal `json:"movement_speed" yaml:"-"`
	MineralCost   *int             `json:"mineral_cost" yaml:"mineral_cost"`
	GasCost       *int             `json:"gas_cost" yaml:"gas_cost"`
	SupplyCost    *int             `json:"supply_cost" yaml:"supply_cost"`
	BuildTime     *int             `json:"build_time" yaml:"build_time"`
	Description   *string          `json:"description" yaml:"description"`
}

func (u *UnitCreate) Validate() []FieldError {
	var errs []FieldError
	errs = checkRequired(errs, "name", u.Name)
	errs = checkMaxLen(errs, "name", u.Name, 50)
	if u.Race == "" {
		errs = append(errs, Ferr(ErrRequired, "race", "Field 'race' is required"))
	} else if !u.Race.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "race", "Invalid value for 'race'"))
	}
	if u.UnitType == "" {
		errs = append(errs, Ferr(ErrRequired, "unit_type", "Field 'unit_type' is required"))
	} else if !u.UnitType.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "unit_type", "Invalid value for 'unit_type'"))
	}
	errs = checkIntField(errs, "hit_points", u.HitPoints, true, false)
	errs = checkIntField(errs, "shields", u.Shields, false, true)
	errs = checkIntField(errs, "attack_damage", u.AttackDamage, false, true)
	errs = checkIntField(errs, "armor", u.Armor, false, true)
	if u.MovementSpeed == nil {
		errs = append(errs, Ferr(ErrRequired, "movement_speed", "Field 'movement_speed' is required"))
	} else {
		errs = checkMoney(errs, "movement_speed", *u.MovementSpeed, false)
	}
	errs = checkIntField(errs, "mineral_cost", u.MineralCost, true, true)
	errs = checkIntField(errs, "gas_cost", u.GasCost, false, true)
	errs = checkIntField(errs, "supply_cost", u.SupplyCost, true, false)
	errs = checkIntField(errs, "build_time", u.BuildTime, true, false)
	if u.Description != nil {
		errs = checkMaxLen(errs, "description", *u.Description, 500)
	}
	return errs
}

// checkIntField covers the required / positive / non-negative matrix the
// stat fields share. Optional fields (required=false) default to 0 and
// are only range-checked when present.
func checkIntField(errs []FieldError, field string, v *int, required, allowZero bool) []FieldError {
	if v == nil {
		if required {
			errs = append(errs, Ferr(ErrRequired, field, "Field '"+field+"' is required"))
		}
		return errs
	}
	if allowZero {
		if *v < 0 {
			errs = append(errs, Ferr(ErrRangeInvalid, field, "Field '"+field+"' must be non-negative"))
		}
	} else if *v <= 0 {
		errs = append(errs, Ferr(ErrRangeInvalid, field, "Field '"+field+"' must be greater than 0"))
	}
	return errs
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func NewUnit(in *UnitCreate) Unit {
	now := time.Now().UTC()
	return Unit{
		ID:            uuid.New(),
		Name:          in.Name,
		Race:          in.Race,
		UnitType:      in.UnitType,
		HitPoints:     intOrZero(in.HitPoints),
		Shields:       intOrZero(in.Shields),
		AttackDamage:  intOrZero(in.AttackDamage),
		Armor:         intOrZero(in.Armor),
		MovementSpeed: *in.MovementSpeed,
		MineralCost:   intOrZero(in.MineralCost),
		GasCost:       intOrZero(in.GasCost),
		SupplyCost:    intOrZero(in.SupplyCost),
		BuildTime:     intOrZero(in.BuildTime),
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type UnitUpdate struct {
	Name          *string          `json:"name"`
	Race          *Race            `json:"race"`
	UnitType      *UnitType        `json:"unit_type"`
	HitPoints     *int             `json:"hit_points"`
	Shields       *int             `json:"shields"`
	AttackDamage  *int             `json:"attack_damage"`
	Armor         *int             `json:"armor"`
	MovementSpeed *decimal.Decimal `json:"movement_speed"`
	MineralCost   *int             `json:"mineral_cost"`
	GasCost       *int             `json:"gas_cost"`
	SupplyCost    *int             `json:"supply_cost"`
	BuildTime     *int             `json:"build_time"`
	Description   Optional[string] `json:"description"`
}

func (u *UnitUpdate) Validate() []FieldError {
	var errs []FieldError
	if u.Name != nil {
		errs = checkRequired(errs, "name", *u.Name)
		errs = checkMaxLen(errs, "name", *u.Name, 50)
	}
	if u.Race != nil && !u.Race.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "race", "Invalid value for 'race'"))
	}
	if u.UnitType != nil && !u.UnitType.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "unit_type", "Invalid value for 'unit_type'"))
	}
	errs = checkIntField(errs, "hit_points", u.HitPoints, false, false)
	errs = checkIntField(errs, "shields", u.Shields, false, true)
	errs = checkIntField(errs, "attack_damage", u.AttackDamage, false, true)
	errs = checkIntField(errs, "armor", u.Armor, false, true)
	if u.MovementSpeed != nil {
		errs = checkMoney(errs, "movement_speed", *u.MovementSpeed, false)
	}
	errs = checkIntField(errs, "mineral_cost", u.MineralCost, false, true)
	errs = checkIntField(errs, "gas_cost", u.GasCost, false, true)
	errs = checkIntField(errs, "supply_cost", u.SupplyCost, false, false)
	errs = checkIntField(errs, "build_time", u.BuildTime, false, false)
	if u.Description.Set && !u.Description.Null {
		errs = checkMaxLen(errs, "description", u.Description.Value, 500)
	}
	return errs
}

func (u *UnitUpdate) Apply(unit *Unit) {
	if u.Name != nil {
		unit.Name = *u.Name
	}
	if u.Race != nil {
		unit.Race = *u.Race
	}
	if u.UnitType != nil {
		unit.UnitType = *u.UnitType
	}
	if u.HitPoints != nil {
		unit.HitPoints = *u.HitPoints
	}
	if u.Shields != nil {
		unit.Shields = *u.Shields
	}
	if u.AttackDamage != nil {
		unit.AttackDamage = *u.AttackDamage
	}
	if u.Armor != nil {
		unit.Armor = *u.Armor
	}
	if u.MovementSpeed != nil {
		unit.MovementSpeed = *u.MovementSpeed
	}
	if u.MineralCost != nil {
		unit.MineralCost = *u.MineralCost
	}
	if u.GasCost != nil {
		unit.GasCost = *u.GasCost
	}
	if u.SupplyCost != nil {
		unit.SupplyCost = *u.SupplyCost
	}
	if u.BuildTime != nil {
		unit.BuildTime = *u.BuildTime
	}
	if u.Description.Set {
		unit.Description = u.Description.Ptr()
	}
	unit.UpdatedAt = time.Now().UTC()
}
