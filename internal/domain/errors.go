package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict (e.g. duplicate signup).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput indicates a malformed or out-of-range request value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProductNotFound reports a missing catalog item. Matches ErrNotFound.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	// ErrCartNotFound reports that the owner has no persisted cart.
	ErrCartNotFound = fmt.Errorf("cart %w", ErrNotFound)
	// ErrLineNotFound reports that the cart has no line for the item.
	ErrLineNotFound = fmt.Errorf("cart line %w", ErrNotFound)
)
