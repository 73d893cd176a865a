package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"storefront/internal/model"
	"storefront/internal/store"
)

// OrderService owns the order admission workflow: the one place where a
// write is gated on reads from other collections.
type OrderService struct {
	orders   *store.Table[model.Order]
	persons  *store.Table[model.Person]
	products *store.Table[model.Product]
	log      zerolog.Logger
}

func NewOrderService(
	orders *store.Table[model.Order],
	persons *store.Table[model.Person],
	products *store.Table[model.Product],
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		persons:  persons,
		products: products,
		log:      log,
	}
}

// Create admits a new order after cross-entity validation, in this fixed
// order, aborting on the first failure with nothing written:
//
//  1. order_number must not repeat an existing order
//  2. the customer must exist in the person table
//  3. per item, in payload order: the product must exist and its current
//     stock must cover the requested quantity
//
// Stock is read but never decremented; two overlapping orders can both
// pass the sufficiency check against the same stock. That matches the
// system this replaces and is documented rather than fixed. Monetary
// totals and item subtotals are stored as given, not recomputed.
func (s *OrderService) Create(in *model.OrderCreate) (model.Order, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return model.Order{}, model.NewValidationError(errs...)
	}

	if s.orders.Any(uuid.Nil, func(o model.Order) bool { return o.OrderNumber == in.OrderNumber }) {
		return model.Order{}, model.NewValidationError(model.Ferr(
			model.ErrUniqueViolation, "order_number",
			fmt.Sprintf("Order with number '%s' already exists", in.OrderNumber)))
	}

	if _, err := s.persons.Get(in.CustomerID); err != nil {
		return model.Order{}, model.NewValidationError(model.Ferr(
			model.ErrRefNotFound, "customer_id", "Customer not found"))
	}

	for i, item := range in.Items {
		product, err := s.products.Get(item.ProductID)
		if err != nil {
			return model.Order{}, model.NewValidationError(model.Ferr(
				model.ErrRefNotFound, fmt.Sprintf("items[%d].product_id", i),
				fmt.Sprintf("Product '%s' not found", item.ProductID)))
		}
		if product.StockQuantity < item.Quantity {
			return model.Order{}, model.NewValidationError(model.Ferr(
				model.ErrInsufficientStock, fmt.Sprintf("items[%d].quantity", i),
				fmt.Sprintf("Insufficient stock for product '%s': %d available, %d requested",
					item.ProductID, product.StockQuantity, item.Quantity)))
		}
	}

	order := model.NewOrder(in)
	if err := s.orders.Insert(order.ID, order); err != nil {
		return model.Order{}, err
	}
	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Int("items", len(order.Items)).
		Msg("order created")
	return order, nil
}

func (s *OrderService) Get(id uuid.UUID) (model.Order, error) {
	return s.orders.Get(id)
}

func (s *OrderService) List() []model.Order {
	return s.orders.List()
}

// Update applies a sparse patch. No field in OrderUpdate carries a
// uniqueness constraint, so no re-validation against the table is
// needed. Status moves are not gated on the current status.
func (s *OrderService) Update(id uuid.UUID, patch *model.OrderUpdate) (model.Order, error) {
	if errs := patch.Validate(); len(errs) > 0 {
		return model.Order{}, model.NewValidationError(errs...)
	}
	return s.orders.Update(id, func(o model.Order) (model.Order, error) {
		patch.Apply(&o)
		return o, nil
	})
}

// Delete is a hard delete: no cascade, no stock or payment reversal.
func (s *OrderService) Delete(id uuid.UUID) error {
	if err := s.orders.Delete(id); err != nil {
		return err
	}
	s.log.Info().Str("order_id", id.String()).Msg("order deleted")
	return nil
}
