package api

import (
	"storefront/internal/model"
	"storefront/internal/store"
)

// Tables owns every resource collection for one server instance. The
// tables are plain constructor-built values, not package globals, so
// tests build an isolated set per case.
type Tables struct {
	Persons   *store.Table[model.Person]
	Addresses *store.Table[model.Address]
	Products  *store.Table[model.Product]
	Units     *store.Table[model.Unit]
	Skills    *store.Table[model.Skill]
	Orders    *store.Table[model.Order]
}

func NewTables() *Tables {
	return &Tables{
		Persons:   store.New[model.Person](),
		Addresses: store.New[model.Address](),
		Products:  store.New[model.Product](),
		Units:     store.New[model.Unit](),
		Skills:    store.New[model.Skill](),
		Orders:    store.New[model.Order](),
	}
}
