package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
	"storefront/internal/store"
)

type fixture struct {
	svc      *OrderService
	orders   *store.Table[model.Order]
	persons  *store.Table[model.Person]
	products *store.Table[model.Product]
	customer model.Person
	product  model.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	orders := store.New[model.Order]()
	persons := store.New[model.Person]()
	products := store.New[model.Product]()

	customer := model.NewPerson(&model.PersonCreate{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, persons.Insert(customer.ID, customer))

	stock := 50
	product := model.NewProduct(&model.ProductCreate{
		Name:          "Laptop",
		SKU:           "MBP16-M3-512GB",
		Category:      "electronics",
		Price:         decimal.RequireFromString("2499.99"),
		StockQuantity: &stock,
	})
	require.NoError(t, products.Insert(product.ID, product))

	return &fixture{
		svc:      NewOrderService(orders, persons, products, zerolog.Nop()),
		orders:   orders,
		persons:  persons,
		products: products,
		customer: customer,
		product:  product,
	}
}

func (f *fixture) orderInput(quantity int) model.OrderCreate {
	unit := decimal.RequireFromString("2499.99")
	sub := unit.Mul(decimal.NewFromInt(int64(quantity)))
	return model.OrderCreate{
		OrderNumber:   "ORD-20250913-0001",
		CustomerID:    f.customer.ID,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Items: []model.OrderItem{{
			ProductID:   f.product.ID,
			ProductName: "Laptop",
			Quantity:    quantity,
			UnitPrice:   unit,
			Subtotal:    sub,
		}},
		Subtotal:        sub,
		TaxAmount:       decimal.Zero,
		ShippingAmount:  decimal.Zero,
		TotalAmount:     sub,
		ShippingAddress: "1 Infinite Loop",
	}
}

func validationError(t *testing.T, err error) model.FieldError {
	t.Helper()
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	return verr.Errors[0]
}

func TestOrderCreateHappyPath(t *testing.T) {
	f := newFixture(t)
	in := f.orderInput(2)

	order, err := f.svc.Create(&in)
	require.NoError(t, err)

	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, "ORD-20250913-0001", order.OrderNumber)
	assert.Equal(t, 1, f.orders.Len())

	// Stock is read for the sufficiency check but never decremented.
	p, _ := f.products.Get(f.product.ID)
	assert.Equal(t, 50, p.StockQuantity)
}

func TestOrderCreateDuplicateNumber(t *testing.T) {
	f := newFixture(t)
	first := f.orderInput(1)
	_, err := f.svc.Create(&first)
	require.NoError(t, err)

	second := f.orderInput(1)
	_, err = f.svc.Create(&second)
	fe := validationError(t, err)
	assert.Equal(t, model.ErrUniqueViolation, fe.Code)
	assert.Equal(t, "order_number", fe.Field)
	assert.Equal(t, 1, f.orders.Len(), "exactly one order survives")
}

func TestOrderCreateUnknownCustomer(t *testing.T) {
	f := newFixture(t)
	in := f.orderInput(1)
	in.CustomerID = uuid.New()

	_, err := f.svc.Create(&in)
	fe := validationError(t, err)
	assert.Equal(t, model.ErrRefNotFound, fe.Code)
	assert.Equal(t, "customer_id", fe.Field)
	assert.Equal(t, 0, f.orders.Len())
}

func TestOrderCreateUnknownProduct(t *testing.T) {
	f := newFixture(t)
	in := f.orderInput(1)
	in.Items[0].ProductID = uuid.New()

	_, err := f.svc.Create(&in)
	fe := validationError(t, err)
	assert.Equal(t, model.ErrRefNotFound, fe.Code)
	assert.Equal(t, "items[0].product_id", fe.Field)
}

func TestOrderCreateStockBoundary(t *testing.T) {
	f := newFixture(t)

	// Exactly the available stock passes.
	in := f.orderInput(50)
	_, err := f.svc.Create(&in)
	require.NoError(t, err)

	// One more than available fails, stock untouched either way.
	over := f.orderInput(51)
	over.OrderNumber = "ORD-20250913-0002"
	_, err = f.svc.Create(&over)
	fe := validationError(t, err)
	assert.Equal(t, model.ErrInsufficientStock, fe.Code)
	assert.Equal(t, "items[0].quantity", fe.Field)

	p, _ := f.products.Get(f.product.ID)
	assert.Equal(t, 50, p.StockQuantity)
}

func TestOrderCreateFirstFailureWins(t *testing.T) {
	f := newFixture(t)
	first := f.orderInput(1)
	_, err := f.svc.Create(&first)
	require.NoError(t, err)

	// Duplicate number and unknown customer at once: the number check
	// runs first and is the one reported.
	in := f.orderInput(1)
	in.CustomerID = uuid.New()
	_, err = f.svc.Create(&in)
	fe := validationError(t, err)
	assert.Equal(t, model.ErrUniqueViolation, fe.Code)
}

func TestOrderCreateTotalsStoredAsGiven(t *testing.T) {
	f := newFixture(t)
	in := f.orderInput(1)
	// Inconsistent but well-formed totals are accepted verbatim.
	in.TotalAmount = decimal.RequireFromString("1.00")

	order, err := f.svc.Create(&in)
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("1.00")))
}

func TestOrderUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	in := f.orderInput(1)
	order, err := f.svc.Create(&in)
	require.NoError(t, err)

	shipped := model.OrderShipped
	updated, err := f.svc.Update(order.ID, &model.OrderUpdate{Status: &shipped})
	require.NoError(t, err)
	assert.Equal(t, model.OrderShipped, updated.Status)

	bad := model.OrderStatus("lost")
	_, err = f.svc.Update(order.ID, &model.OrderUpdate{Status: &bad})
	fe := validationError(t, err)
	assert.Equal(t, model.ErrEnumInvalid, fe.Code)

	require.NoError(t, f.svc.Delete(order.ID))
	assert.ErrorIs(t, f.svc.Delete(order.ID), store.ErrNotFound)
	assert.Equal(t, 0, f.orders.Len())
}
