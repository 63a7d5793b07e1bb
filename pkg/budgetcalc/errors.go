package budgetcalc

import "errors"

// ErrInvalidPeriod is returned when a period kind is not one of the five
// recognized values.
var ErrInvalidPeriod = errors.New("budgetcalc: invalid period kind")
