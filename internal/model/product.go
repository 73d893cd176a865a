package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The SKU is unique across the whole
// collection, enforced at create and again on update when it changes.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ProductCreate struct {
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int            `json:"stock_quantity"`
	IsActive      *bool           `json:"is_active"`
}

func (p *ProductCreate) Validate() []FieldError {
	var errs []FieldError
	errs = checkRequired(errs, "name", p.Name)
	errs = checkMaxLen(errs, "name", p.Name, 200)
	if p.Description != nil {
		errs = checkMaxLen(errs, "description", *p.Description, 1000)
	}
	errs = checkRequired(errs, "sku", p.SKU)
	if p.SKU != "" && !skuRe.MatchString(p.SKU) {
		errs = append(errs, Ferr(ErrPatternMismatch, "sku",
			"Field 'sku' must be 3-20 characters of A-Z, 0-9 and '-'"))
	}
	errs = checkRequired(errs, "category", p.Category)
	errs = checkMaxLen(errs, "category", p.Category, 50)
	errs = checkMoney(errs, "price", p.Price, false)
	if p.StockQuantity == nil {
		errs = append(errs, Ferr(ErrRequired, "stock_quantity", "Field 'stock_quantity' is required"))
	} else if *p.StockQuantity < 0 {
		errs = append(errs, Ferr(ErrRangeInvalid, "stock_quantity", "Field 'stock_quantity' must be non-negative"))
	}
	return errs
}

func NewProduct(in *ProductCreate) Product {
	now := time.Now().UTC()
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return Product{
		ID:            uuid.New(),
		Name:          in.Name,
		Description:   in.Description,
		SKU:           in.SKU,
		Category:      in.Category,
		Price:         in.Price,
		StockQuantity: *in.StockQuantity,
		IsActive:      active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type ProductUpdate struct {
	Name          *string          `json:"name"`
	Description   Optional[string] `json:"description"`
	SKU           *string          `json:"sku"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	IsActive      *bool            `json:"is_active"`
}

func (u *ProductUpdate) Validate() []FieldError {
	var errs []FieldError
	if u.Name != nil {
		errs = checkRequired(errs, "name", *u.Name)
		errs = checkMaxLen(errs, "name", *u.Name, 200)
	}
	if u.Description.Set && !u.Description.Null {
		errs = checkMaxLen(errs, "description", u.Description.Value, 1000)
	}
	if u.SKU != nil && !skuRe.MatchString(*u.SKU) {
		errs = append(errs, Ferr(ErrPatternMismatch, "sku",
			"Field 'sku' must be 3-20 characters of A-Z, 0-9 and '-'"))
	}
	if u.Category != nil {
		errs = checkRequired(errs, "category", *u.Category)
		errs = checkMaxLen(errs, "category", *u.Category, 50)
	}
	if u.Price != nil {
		errs = checkMoney(errs, "price", *u.Price, false)
	}
	if u.StockQuantity != nil && *u.StockQuantity < 0 {
		errs = append(errs, Ferr(ErrRangeInvalid, "stock_quantity", "Field 'stock_quantity' must be non-negative"))
	}
	return errs
}

func (u *ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description.Set {
		p.Description = u.Description.Ptr()
	}
	if u.SKU != nil {
		p.SKU = *u.SKU
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.StockQuantity != nil {
		p.StockQuantity = *u.StockQuantity
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
	p.UpdatedAt = time.Now().UTC()
}
