package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	skuRe         = regexp.MustCompile(`^[A-Z0-9\-]{3,20}$`)
	orderNumberRe = regexp.MustCompile(`^ORD-\d{8}-\d{4}$`)
	dateRe        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`) // YYYY-MM-DD
)

func checkRequired(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, Ferr(ErrRequired, field, "Field '"+field+"' is required"))
	}
	return errs
}

func checkMaxLen(errs []FieldError, field, value string, max int) []FieldError {
	if len(value) > max {
		return append(errs, Ferr(ErrRangeInvalid, field,
			fmt.Sprintf("Field '%s' must be at most %d characters", field, max)))
	}
	return errs
}

// checkMoney enforces the 2-decimal-place money contract. allowZero covers
// fields like tax and shipping that may legitimately be 0.00.
func checkMoney(errs []FieldError, field string, v decimal.Decimal, allowZero bool) []FieldError {
	return checkDecimal(errs, field, v, allowZero, 2)
}

func checkDecimal(errs []FieldError, field string, v decimal.Decimal, allowZero bool, places int32) []FieldError {
	if v.IsNegative() || (!allowZero && v.IsZero()) {
		bound := "greater than 0"
		if allowZero {
			bound = "non-negative"
		}
		errs = append(errs, Ferr(ErrRangeInvalid, field, "Field '"+field+"' must be "+bound))
	}
	if v.Exponent() < -places {
		errs = append(errs, Ferr(ErrRangeInvalid, field,
			fmt.Sprintf("Field '%s' must have at most %d decimal places", field, places)))
	}
	return errs
}
