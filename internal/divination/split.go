// internal/divination/split.go
//
// The 分二 step. A human never cuts a pile of stalks exactly in half, so
// the split is drawn from a normal distribution centered on the midpoint.
// The spread is a tuning knob, not a classical constant.

package divination

import (
	"math"
	"math/rand"
)

// DefaultSpread is the standard deviation of the hand-split distribution.
const DefaultSpread = 2.0

// Splitter divides a pile of total stalks into two nonempty piles.
// Implementations must return left in [1, total-1] and right = total-left
// for any total >= 2.
type Splitter func(total int) (left, right int)

// NewGaussianSplitter returns a Splitter that imitates manual handling:
// the left pile is drawn around total/2 with the given spread, rounded to
// the nearest stalk and clamped so both piles stay nonempty.
func NewGaussianSplitter(rng *rand.Rand, spread float64) Splitter {
	return func(total int) (int, int) {
		half := float64(total) / 2
		left := int(math.Round(rng.NormFloat64()*spread + half))
		if left < 1 {
			left = 1
		}
		if left > total-1 {
			left = total - 1
		}
		return left, total - left
	}
}
