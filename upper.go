package yahtzee

import "fmt"

// UpperBonusThreshold is the upper-section running total that triggers the
// 35-point bonus.
const UpperBonusThreshold = 63

// UpperBonusScore is the score awarded when [UpperBonusThreshold] is reached.
const UpperBonusScore = 35

// YahtzeeBonusScore is the score awarded for each Yahtzee rolled after the
// Yahtzee category has already been Scored.
const YahtzeeBonusScore = 100

// UpperSum is the upper-section running total, saturating at
// [UpperBonusThreshold]; values at or above the threshold are
// indistinguishable for EV purposes.
type UpperSum uint8

// NewUpperSum validates v is in [0, 63].
func NewUpperSum(v int) (UpperSum, error) {
	if v < 0 || UpperBonusThreshold < v {
		return 0, fmt.Errorf("%w: %d", ErrInvalidUpperSum, v)
	}
	return UpperSum(v), nil
}

// Add returns the sum saturated at [UpperBonusThreshold]. This is a defined
// saturating operation, not an error condition.
func (u UpperSum) Add(score int) UpperSum {
	v := int(u) + score
	if v > UpperBonusThreshold {
		v = UpperBonusThreshold
	}
	if v < 0 {
		v = 0
	}
	return UpperSum(v)
}

// String satisfies the [fmt.Stringer] interface.
func (u UpperSum) String() string {
	return fmt.Sprintf("%d", uint8(u))
}
