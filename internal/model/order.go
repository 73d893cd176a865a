package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle enumeration. The intended
// progression is pending → confirmed → processing → shipped → delivered,
// with cancelled reachable from any state. The progression is documented
// policy only: PATCH accepts any status from any prior status, matching
// the behavior this service replaces.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a value record inside an Order. Product name and unit
// price are snapshots taken at order time; later product mutations must
// not change them. The subtotal is caller-supplied and never recomputed
// against quantity × unit_price.
type OrderItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func (it *OrderItem) validate(prefix string) []FieldError {
	var errs []FieldError
	if it.ProductID == uuid.Nil {
		errs = append(errs, Ferr(ErrRequired, prefix+".product_id", "Field 'product_id' is required"))
	}
	errs = checkRequired(errs, prefix+".product_name", it.ProductName)
	if it.Quantity <= 0 {
		errs = append(errs, Ferr(ErrRangeInvalid, prefix+".quantity", "Field 'quantity' must be greater than 0"))
	}
	errs = checkMoney(errs, prefix+".unit_price", it.UnitPrice, false)
	errs = checkMoney(errs, prefix+".subtotal", it.Subtotal, false)
	return errs
}

// Order is the aggregate root: it references a Person and, through its
// items, Products, but owns its own lifecycle. Customer name and email
// are denormalized snapshots and are not checked against the live Person.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	ShippingAmount  decimal.Decimal `json:"shipping_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderCreate struct {
	OrderNumber     string          `json:"order_number"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	ShippingAmount  decimal.Decimal `json:"shipping_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          *OrderStatus    `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	Notes           *string         `json:"notes"`
}

func (o *OrderCreate) Validate() []FieldError {
	var errs []FieldError
	errs = checkRequired(errs, "order_number", o.OrderNumber)
	if o.OrderNumber != "" && !orderNumberRe.MatchString(o.OrderNumber) {
		errs = append(errs, Ferr(ErrPatternMismatch, "order_number",
			"Field 'order_number' must match ORD-YYYYMMDD-NNNN"))
	}
	if o.CustomerID == uuid.Nil {
		errs = append(errs, Ferr(ErrRequired, "customer_id", "Field 'customer_id' is required"))
	}
	errs = checkRequired(errs, "customer_name", o.CustomerName)
	errs = checkRequired(errs, "customer_email", o.CustomerEmail)
	if len(o.Items) == 0 {
		errs = append(errs, Ferr(ErrRangeInvalid, "items", "Field 'items' must contain at least one item"))
	}
	for i := range o.Items {
		errs = append(errs, o.Items[i].validate(fmt.Sprintf("items[%d]", i))...)
	}
	errs = checkMoney(errs, "subtotal", o.Subtotal, false)
	errs = checkMoney(errs, "tax_amount", o.TaxAmount, true)
	errs = checkMoney(errs, "shipping_amount", o.ShippingAmount, true)
	errs = checkMoney(errs, "total_amount", o.TotalAmount, false)
	if o.Status != nil && !o.Status.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "status", "Invalid value for 'status'"))
	}
	errs = checkRequired(errs, "shipping_address", o.ShippingAddress)
	if o.Notes != nil {
		errs = checkMaxLen(errs, "notes", *o.Notes, 500)
	}
	return errs
}

func NewOrder(in *OrderCreate) Order {
	now := time.Now().UTC()
	status := OrderPending
	if in.Status != nil {
		status = *in.Status
	}
	return Order{
		ID:              uuid.New(),
		OrderNumber:     in.OrderNumber,
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		Items:           in.Items,
		Subtotal:        in.Subtotal,
		TaxAmount:       in.TaxAmount,
		ShippingAmount:  in.ShippingAmount,
		TotalAmount:     in.TotalAmount,
		Status:          status,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// OrderUpdate deliberately covers only the mutable tail of an order.
// Items, amounts and customer references are fixed after creation.
type OrderUpdate struct {
	Status          *OrderStatus     `json:"status"`
	ShippingAddress *string          `json:"shipping_address"`
	Notes           Optional[string] `json:"notes"`
}

func (u *OrderUpdate) Validate() []FieldError {
	var errs []FieldError
	if u.Status != nil && !u.Status.Valid() {
		errs = append(errs, Ferr(ErrEnumInvalid, "status", "Invalid value for 'status'"))
	}
	if u.ShippingAddress != nil {
		errs = checkRequired(errs, "shipping_address", *u.ShippingAddress)
	}
	if u.Notes.Set && !u.Notes.Null {
		errs = checkMaxLen(errs, "notes", u.Notes.Value, 500)
	}
	return errs
}

func (u *OrderUpdate) Apply(o *Order) {
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.ShippingAddress != nil {
		o.ShippingAddress = *u.ShippingAddress
	}
	if u.Notes.Set {
		o.Notes = u.Notes.Ptr()
	}
	o.UpdatedAt = time.Now().UTC()
}
