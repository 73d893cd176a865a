package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderCreate() OrderCreate {
	return OrderCreate{
		OrderNumber:   "ORD-20250913-0001",
		CustomerID:    uuid.New(),
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Items: []OrderItem{{
			ProductID:   uuid.New(),
			ProductName: "Laptop",
			Quantity:    2,
			UnitPrice:   decimal.RequireFromString("2499.99"),
			Subtotal:    decimal.RequireFromString("4999.98"),
		}},
		Subtotal:        decimal.RequireFromString("4999.98"),
		TaxAmount:       decimal.RequireFromString("400.00"),
		ShippingAmount:  decimal.Zero,
		TotalAmount:     decimal.RequireFromString("5399.98"),
		ShippingAddress: "1 Infinite Loop",
	}
}

func TestOrderCreateValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*OrderCreate)
		wantField string
		wantCode  string
	}{
		{name: "valid", mutate: func(o *OrderCreate) {}},
		{
			name:      "bad order number shape",
			mutate:    func(o *OrderCreate) { o.OrderNumber = "ORD-2025-0001" },
			wantField: "order_number", wantCode: ErrPatternMismatch,
		},
		{
			name:      "lowercase prefix rejected",
			mutate:    func(o *OrderCreate) { o.OrderNumber = "ord-20250913-0001" },
			wantField: "order_number", wantCode: ErrPatternMismatch,
		},
		{
			name:      "missing customer id",
			mutate:    func(o *OrderCreate) { o.CustomerID = uuid.Nil },
			wantField: "customer_id", wantCode: ErrRequired,
		},
		{
			name:      "no items",
			mutate:    func(o *OrderCreate) { o.Items = nil },
			wantField: "items", wantCode: ErrRangeInvalid,
		},
		{
			name:      "zero quantity item",
			mutate:    func(o *OrderCreate) { o.Items[0].Quantity = 0 },
			wantField: "items[0].quantity", wantCode: ErrRangeInvalid,
		},
		{
			name:      "negative tax",
			mutate:    func(o *OrderCreate) { o.TaxAmount = decimal.RequireFromString("-1") },
			wantField: "tax_amount", wantCode: ErrRangeInvalid,
		},
		{
			name:   "zero shipping allowed",
			mutate: func(o *OrderCreate) { o.ShippingAmount = decimal.Zero },
		},
		{
			name:      "zero total rejected",
			mutate:    func(o *OrderCreate) { o.TotalAmount = decimal.Zero },
			wantField: "total_amount", wantCode: ErrRangeInvalid,
		},
		{
			name: "unknown status",
			mutate: func(o *OrderCreate) {
				s := OrderStatus("returned")
				o.Status = &s
			},
			wantField: "status", wantCode: ErrEnumInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validOrderCreate()
			tt.mutate(&in)
			errs := in.Validate()
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.Equal(t, tt.wantCode, errs[0].Code)
		})
	}
}

func TestNewOrderStatusDefault(t *testing.T) {
	in := validOrderCreate()
	o := NewOrder(&in)
	assert.Equal(t, OrderPending, o.Status)

	shipped := OrderShipped
	in2 := validOrderCreate()
	in2.Status = &shipped
	assert.Equal(t, OrderShipped, NewOrder(&in2).Status)
}

func TestOrderUpdateApply(t *testing.T) {
	in := validOrderCreate()
	o := NewOrder(&in)

	// Any status is reachable from any other, including backwards.
	delivered := OrderDelivered
	(&OrderUpdate{Status: &delivered}).Apply(&o)
	assert.Equal(t, OrderDelivered, o.Status)

	pending := OrderPending
	(&OrderUpdate{Status: &pending}).Apply(&o)
	assert.Equal(t, OrderPending, o.Status)

	notes := "leave at door"
	patch := OrderUpdate{Notes: Optional[string]{Set: true, Value: notes}}
	patch.Apply(&o)
	require.NotNil(t, o.Notes)
	assert.Equal(t, notes, *o.Notes)

	// Amounts and items are not reachable through the patch type.
	assert.True(t, o.TotalAmount.Equal(in.TotalAmount))
	assert.Len(t, o.Items, 1)
}
