package model

import (
	"time"

	"github.com/google/uuid"
)

// Address is the standalone postal collection. Unlike the other resources
// its id is supplied by the caller at creation time.
type Address struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      *string   `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AddressCreate struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      *string   `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
}

func (a *AddressCreate) Validate() []FieldError {
	var errs []FieldError
	if a.ID == uuid.Nil {
		errs = append(errs, Ferr(ErrRequired, "id", "Field 'id' is required"))
	}
	errs = checkRequired(errs, "street", a.Street)
	errs = checkRequired(errs, "city", a.City)
	errs = checkRequired(errs, "postal_code", a.PostalCode)
	errs = checkRequired(errs, "country", a.Country)
	return errs
}

func NewAddress(in *AddressCreate) Address {
	now := time.Now().UTC()
	return Address{
		ID:         in.ID,
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

type AddressUpdate struct {
	Street     *string          `json:"street"`
	City       *string          `json:"city"`
	State      Optional[string] `json:"state"`
	PostalCode *string          `json:"postal_code"`
	Country    *string          `json:"country"`
}

func (u *AddressUpdate) Validate() []FieldError {
	var errs []FieldError
	if u.Street != nil {
		errs = checkRequired(errs, "street", *u.Street)
	}
	if u.City != nil {
		errs = checkRequired(errs, "city", *u.City)
	}
	if u.PostalCode != nil {
		errs = checkRequired(errs, "postal_code", *u.PostalCode)
	}
	if u.Country != nil {
		errs = checkRequired(errs, "country", *u.Country)
	}
	return errs
}

func (u *AddressUpdate) Apply(a *Address) {
	if u.Street != nil {
		a.Street = *u.Street
	}
	if u.City != nil {
		a.City = *u.City
	}
	if u.State.Set {
		a.State = u.State.Ptr()
	}
	if u.PostalCode != nil {
		a.PostalCode = *u.PostalCode
	}
	if u.Country != nil {
		a.Country = *u.Country
	}
	a.UpdatedAt = time.Now().UTC()
}
