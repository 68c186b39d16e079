package quota

import "errors"

// ErrExhausted is returned when a user has no generations remaining for the
// current month.
var ErrExhausted = errors.New("monthly generation allowance exhausted")

// DefaultAllowance is the number of AI generations granted per month.
const DefaultAllowance = 50
