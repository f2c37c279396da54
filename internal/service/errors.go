package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailableProduct means a cart referenced a product that is
	// missing or inactive. The whole batch is rejected.
	ErrUnavailableProduct = errors.New("one or more products are unavailable")

	// ErrOrderNotLinked means a checkout session carries no order
	// reference in its metadata.
	ErrOrderNotLinked = errors.New("order not linked to session")

	// ErrForbidden means the caller does not own the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidReference means a request named a related entity (service,
	// staff member) that does not exist.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrSlotTaken means the requested booking slot is already booked.
	ErrSlotTaken = errors.New("this time slot is already booked")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = errors.New("email already registered")
)

// InsufficientStockError carries the offending product's display name and
// the requested quantity for the user-facing message.
type InsufficientStockError struct {
	Product   string
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Product)
}
