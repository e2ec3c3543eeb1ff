package services

import "errors"

// Domain errors surfaced to the HTTP layer. Handlers map them to status
// codes with errors.Is; services wrap them with identifying detail.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a create would violate a uniqueness rule.
	ErrConflict = errors.New("already exists")
	// ErrOutOfStock means the product has no stock left to add.
	ErrOutOfStock = errors.New("out of stock")
	// ErrEmptyCart means checkout was attempted on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidCredentials means login failed; deliberately vague so it
	// does not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MaxPageSize is the hard upper bound for list endpoints. Requests asking
// for more are clamped, never rejected.
const MaxPageSize = 50

// clampPage normalizes offset/limit for list queries.
func clampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	return offset, limit
}
