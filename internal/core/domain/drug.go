package domain

import (
	"errors"
	"fmt"
)

var ErrDrugNotFound = errors.New("drug not found")
var ErrInvalidDrugData = errors.New("invalid drug data")
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// InsufficientStockError is returned when a sale would drive the stock
// negative. Available carries the current quantity so the caller can
// correct the request without another round trip.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: only %d units available", e.Available)
}

// Drug is the core inventory record. Quantity never goes below zero; the
// sell path enforces this with a conditional update in the repository.
type Drug struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Dosage   string  `json:"dosage"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Brand    string  `json:"brand,omitempty"`
	Location string  `json:"location,omitempty"`
}
