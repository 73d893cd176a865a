package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestPersonCreateValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        PersonCreate
		wantField string
		wantCode  string
	}{
		{
			name: "valid minimal",
			in:   PersonCreate{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		},
		{
			name:      "missing first name",
			in:        PersonCreate{LastName: "Lovelace", Email: "ada@example.com"},
			wantField: "first_name", wantCode: ErrRequired,
		},
		{
			name:      "email without at sign",
			in:        PersonCreate{FirstName: "Ada", LastName: "Lovelace", Email: "ada.example.com"},
			wantField: "email", wantCode: ErrPatternMismatch,
		},
		{
			name: "bad birth date",
			in: PersonCreate{
				FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
				BirthDate: strp("13/09/2025"),
			},
			wantField: "birth_date", wantCode: ErrPatternMismatch,
		},
		{
			name: "embedded address missing city",
			in: PersonCreate{
				FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
				Addresses: []EmbeddedAddress{{Street: "1 Main St", PostalCode: "10001", Country: "USA"}},
			},
			wantField: "addresses[0].city", wantCode: ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.in.Validate()
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

func TestNewPersonAddressesNeverNil(t *testing.T) {
	in := PersonCreate{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	p := NewPerson(&in)
	require.NotNil(t, p.Addresses)
	assert.Empty(t, p.Addresses)
}

func TestPersonUpdateApply(t *testing.T) {
	in := PersonCreate{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Phone: strp("+44-20"), UNI: strp("al0001"),
	}
	p := NewPerson(&in)

	patch := PersonUpdate{
		Email: strp("countess@example.com"),
		Phone: Optional[string]{Set: true, Null: true},
	}
	require.Empty(t, patch.Validate())
	patch.Apply(&p)

	assert.Equal(t, "countess@example.com", p.Email)
	assert.Nil(t, p.Phone, "explicit null clears phone")
	require.NotNil(t, p.UNI)
	assert.Equal(t, "al0001", *p.UNI, "absent field untouched")
	assert.Equal(t, "Ada", p.FirstName)
}
