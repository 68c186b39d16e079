// README: Common value objects shared across modules.
package types

// ID identifies an entity (hex string for bookings, UUID for generated documents).
type ID string

// Money is an amount in minor-unit-free whole currency units.
type Money struct {
	Amount   int64
	Currency string
}
