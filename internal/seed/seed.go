// Package seed loads an optional YAML fixture into the in-memory tables
// at startup. Rows go through the same constructors and uniqueness rules
// as API writes; a bad row aborts the load so a typo in the fixture is
// caught immediately rather than surfacing as odd API behavior later.
package seed

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"storefront/internal/api"
	"storefront/internal/model"
)

// Decimal-valued fields are declared as strings here because yaml.v3
// cannot decode into decimal.Decimal directly; they are parsed on apply.
type productSeed struct {
	Name          string  `yaml:"name"`
	Description   *string `yaml:"description"`
	SKU           string  `yaml:"sku"`
	Category      string  `yaml:"category"`
	Price         string  `yaml:"price"`
	StockQuantity *int    `yaml:"stock_quantity"`
	IsActive      *bool   `yaml:"is_active"`
}

type unitSeed struct {
	model.UnitCreate `yaml:",inline"`
	MovementSpeed    string `yaml:"movement_speed"`
}

type skillSeed struct {
	model.SkillCreate `yaml:",inline"`
	Cooldown          string  `yaml:"cooldown"`
	Duration          *string `yaml:"duration"`
}

type File struct {
	Persons  []model.PersonCreate `yaml:"persons"`
	Products []productSeed        `yaml:"products"`
	Units    []unitSeed           `yaml:"units"`
	Skills   []skillSeed          `yaml:"skills"`
}

func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Apply inserts every row, honoring the same uniqueness constraints the
// handlers enforce. The first invalid or duplicate row fails the whole load.
func (f *File) Apply(t *api.Tables) error {
	for i := range f.Persons {
		in := &f.Persons[i]
		if err := firstErr(in.Validate()); err != nil {
			return fmt.Errorf("persons[%d]: %w", i, err)
		}
		if in.UNI != nil {
			uni := *in.UNI
			if t.Persons.Any(uuid.Nil, func(p model.Person) bool { return p.UNI != nil && *p.UNI == uni }) {
				return fmt.Errorf("persons[%d]: duplicate uni %q", i, uni)
			}
		}
		p := model.NewPerson(in)
		if err := t.Persons.Insert(p.ID, p); err != nil {
			return fmt.Errorf("persons[%d]: %w", i, err)
		}
	}

	for i := range f.Products {
		row := &f.Products[i]
		price, err := decimal.NewFromString(row.Price)
		if err != nil {
			return fmt.Errorf("products[%d]: price: %w", i, err)
		}
		in := &model.ProductCreate{
			Name:          row.Name,
			Description:   row.Description,
			SKU:           row.SKU,
			Category:      row.Category,
			Price:         price,
			StockQuantity: row.StockQuantity,
			IsActive:      row.IsActive,
		}
		if err := firstErr(in.Validate()); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
		if t.Products.Any(uuid.Nil, func(p model.Product) bool { return p.SKU == in.SKU }) {
			return fmt.Errorf("products[%d]: duplicate sku %q", i, in.SKU)
		}
		p := model.NewProduct(in)
		if err := t.Products.Insert(p.ID, p); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
	}

	for i := range f.Units {
		row := &f.Units[i]
		speed, err := decimal.NewFromString(row.MovementSpeed)
		if err != nil {
			return fmt.Errorf("units[%d]: movement_speed: %w", i, err)
		}
		in := row.UnitCreate
		in.MovementSpeed = &speed
		if err := firstErr(in.Validate()); err != nil {
			return fmt.Errorf("units[%d]: %w", i, err)
		}
		if t.Units.Any(uuid.Nil, func(u model.Unit) bool { return u.Name == in.Name && u.Race == in.Race }) {
			return fmt.Errorf("units[%d]: duplicate name %q for race %q", i, in.Name, in.Race)
		}
		u := model.NewUnit(&in)
		if err := t.Units.Insert(u.ID, u); err != nil {
			return fmt.Errorf("units[%d]: %w", i, err)
		}
	}

	for i := range f.Skills {
		row := &f.Skills[i]
		cooldown, err := decimal.NewFromString(row.Cooldown)
		if err != nil {
			return fmt.Errorf("skills[%d]: cooldown: %w", i, err)
		}
		in := row.SkillCreate
		in.Cooldown = &cooldown
		if row.Duration != nil {
			d, err := decimal.NewFromString(*row.Duration)
			if err != nil {
				return fmt.Errorf("skills[%d]: duration: %w", i, err)
			}
			in.Duration = &d
		}
		if err := firstErr(in.Validate()); err != nil {
			return fmt.Errorf("skills[%d]: %w", i, err)
		}
		if t.Skills.Any(uuid.Nil, func(s model.Skill) bool { return s.Name == in.Name }) {
			return fmt.Errorf("skills[%d]: duplicate name %q", i, in.Name)
		}
		s := model.NewSkill(&in)
		if err := t.Skills.Insert(s.ID, s); err != nil {
			return fmt.Errorf("skills[%d]: %w", i, err)
		}
	}

	return nil
}

func firstErr(errs []model.FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", errs[0].Field, errs[0].Message)
}
