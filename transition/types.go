// SPDX-License-Identifier: MIT

package transition

import (
	"errors"
	"fmt"
	"math"
)

// DefaultDamping is the customary probability of following a link.
const DefaultDamping = 0.85

var (
	// ErrInvalidPage indicates the current page is not in the corpus.
	// It is never silently replaced by another page.
	ErrInvalidPage = errors.New("transition: page not in corpus")

	// ErrInvalidDamping indicates a damping factor outside [0,1].
	ErrInvalidDamping = errors.New("transition: damping factor must be in [0,1]")
)

// ValidateDamping returns ErrInvalidDamping (wrapped with the value) unless
// 0 ≤ d ≤ 1. Estimators call it so every package reports the same sentinel.
func ValidateDamping(d float64) error {
	if math.IsNaN(d) || d < 0 || d > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDamping, d)
	}

	return nil
}
