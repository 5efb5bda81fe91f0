package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoTransactions is returned when an analysis receives an empty table.
	ErrNoTransactions = errors.New("no transactions to analyze")
	// ErrMissingField is returned when a transaction lacks a customer or order id.
	ErrMissingField = errors.New("transaction is missing a required field")
	// ErrReferenceBeforePurchase is returned when the reference date precedes a purchase.
	ErrReferenceBeforePurchase = errors.New("reference date is before last purchase")
)

// MissingColumnsError names the required columns absent from an input table.
type MissingColumnsError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Source, strings.Join(e.Columns, ", "))
}
