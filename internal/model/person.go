package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EmbeddedAddress is a postal record carried inside a Person. It has no
// identity of its own; the standalone Address collection is a separate
// resource.
type EmbeddedAddress struct {
	Street     string  `json:"street" yaml:"street"`
	City       string  `json:"city" yaml:"city"`
	State      *string `json:"state" yaml:"state"`
	PostalCode string  `json:"postal_code" yaml:"postal_code"`
	Country    string  `json:"country" yaml:"country"`
}

func (a *EmbeddedAddress) validate(prefix string) []FieldError {
	var errs []FieldError
	errs = checkRequired(errs, prefix+".street", a.Street)
	errs = checkRequired(errs, prefix+".city", a.City)
	errs = checkRequired(errs, prefix+".postal_code", a.PostalCode)
	errs = checkRequired(errs, prefix+".country", a.Country)
	return errs
}

type Person struct {
	ID        uuid.UUID         `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Phone     *string           `json:"phone"`
	BirthDate *string           `json:"birth_date"`
	UNI       *string           `json:"uni"`
	Addresses []EmbeddedAddress `json:"addresses"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type PersonCreate struct {
	FirstName string            `json:"first_name" yaml:"first_name"`
	LastName  string            `json:"last_name" yaml:"last_name"`
	Email     string            `json:"email" yaml:"email"`
	Phone     *string           `json:"phone" yaml:"phone"`
	BirthDate *string           `json:"birth_date" yaml:"birth_date"`
	UNI       *string           `json:"uni" yaml:"uni"`
	Addresses []EmbeddedAddress `json:"addresses" yaml:"addresses"`
}

func (p *PersonCreate) Validate() []FieldError {
	var errs []FieldError
	errs = checkRequired(errs, "first_name", p.FirstName)
	errs = checkRequired(errs, "last_name", p.LastName)
	errs = checkRequired(errs, "email", p.Email)
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		errs = append(errs, Ferr(ErrPatternMismatch, "email", "Field 'email' must be a valid email address"))
	}
	if p.BirthDate != nil && !dateRe.MatchString(*p.BirthDate) {
		errs = append(errs, Ferr(ErrPatternMismatch, "birth_date", "Field 'birth_date' must match YYYY-MM-DD"))
	}
	for i := range p.Addresses {
		errs = append(errs, p.Addresses[i].validate(fmt.Sprintf("addresses[%d]", i))...)
	}
	return errs
}

func NewPerson(in *PersonCreate) Person {
	now := time.Now().UTC()
	addrs := in.Addresses
	if addrs == nil {
		addrs = []EmbeddedAddress{}
	}
	return Person{
		ID:        uuid.New(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		BirthDate: in.BirthDate,
		UNI:       in.UNI,
		Addresses: addrs,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type PersonUpdate struct {
	FirstName *string            `json:"first_name"`
	LastName  *string            `json:"last_name"`
	Email     *string            `json:"email"`
	Phone     Optional[string]   `json:"phone"`
	BirthDate Optional[string]   `json:"birth_date"`
	UNI       Optional[string]   `json:"uni"`
	Addresses *[]EmbeddedAddress `json:"addresses"`
}

func (u *PersonUpdate) Validate() []FieldError {
	var errs []FieldError
	if u.FirstName != nil {
		errs = checkRequired(errs, "first_name", *u.FirstName)
	}
	if u.LastName != nil {
		errs = checkRequired(errs, "last_name", *u.LastName)
	}
	if u.Email != nil {
		errs = checkRequired(errs, "email", *u.Email)
		if *u.Email != "" && !strings.Contains(*u.Email, "@") {
			errs = append(errs, Ferr(ErrPatternMismatch, "email", "Field 'email' must be a valid email address"))
		}
	}
	if u.BirthDate.Set && !u.BirthDate.Null && !dateRe.MatchString(u.BirthDate.Value) {
		errs = append(errs, Ferr(ErrPatternMismatch, "birth_date", "Field 'birth_date' must match YYYY-MM-DD"))
	}
	if u.Addresses != nil {
		for i := range *u.Addresses {
			errs = append(errs, (*u.Addresses)[i].validate(fmt.Sprintf("addresses[%d]", i))...)
		}
	}
	return errs
}

// Apply merges the set fields onto p and refreshes the update timestamp.
func (u *PersonUpdate) Apply(p *Person) {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone.Set {
		p.Phone = u.Phone.Ptr()
	}
	if u.BirthDate.Set {
		p.BirthDate = u.BirthDate.Ptr()
	}
	if u.UNI.Set {
		p.UNI = u.UNI.Ptr()
	}
	if u.Addresses != nil {
		p.Addresses = *u.Addresses
	}
	p.UpdatedAt = time.Now().UTC()
}
