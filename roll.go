package yahtzee

import (
	"fmt"
	"strings"
)

// NumFaces is the number of distinct die faces.
const NumFaces = 6

// NumDice is the number of dice in a Yahtzee hand.
const NumDice = 5

// Roll is a length-[NumFaces] tuple of nonnegative integers representing a
// multiset of [NumDice] dice, where c[i] is the number of dice currently
// showing face i+1. Face order is irrelevant to the game but fixed for
// indexing. Invariant: sum(c) == [NumDice] and each c[i] <= [NumDice].
type Roll [NumFaces]uint8

// NewRoll creates a roll from the given per-face counts, validating that the
// counts sum to [NumDice] and that no face count exceeds [NumDice].
func NewRoll(counts [NumFaces]uint8) (Roll, error) {
	r := Roll(counts)
	if err := r.validate(); err != nil {
		return Roll{}, err
	}
	return r, nil
}

// validate checks the roll's invariants.
func (r Roll) validate() error {
	var sum int
	for i, c := range r {
		if c > NumDice {
			return fmt.Errorf("%w: face %d count %d exceeds %d", ErrInvalidRoll, i, c, NumDice)
		}
		sum += int(c)
	}
	if sum != NumDice {
		return fmt.Errorf("%w: counts sum to %d, want %d", ErrInvalidRoll, sum, NumDice)
	}
	return nil
}

// Count returns the number of dice showing face (0-indexed).
func (r Roll) Count(face int) int {
	return int(r[face])
}

// Faces returns the flattened list of 1-indexed face values present in the
// roll, in ascending order, e.g. a roll of two Fours and three Sixes returns
// [4, 4, 6, 6, 6].
func (r Roll) Faces() []int {
	faces := make([]int, 0, NumDice)
	for i, c := range r {
		for n := 0; n < int(c); n++ {
			faces = append(faces, i+1)
		}
	}
	return faces
}

// String satisfies the [fmt.Stringer] interface.
func (r Roll) String() string {
	var sb strings.Builder
	for i, f := range r.Faces() {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", f)
	}
	return sb.String()
}

// Keep is a length-[NumFaces] tuple of nonnegative integers representing a
// choice to keep a submultiset of the current dice (or equivalently, to
// reroll the complement). Invariant: sum(c) <= [NumDice] and each c[i] <=
// [NumDice].
type Keep [NumFaces]uint8

// NewKeep creates a keep from the given per-face counts, validating that the
// counts sum to at most [NumDice] and that no face count exceeds [NumDice].
func NewKeep(counts [NumFaces]uint8) (Keep, error) {
	k := Keep(counts)
	if err := k.validate(); err != nil {
		return Keep{}, err
	}
	return k, nil
}

// validate checks the keep's invariants.
func (k Keep) validate() error {
	var sum int
	for i, c := range k {
		if c > NumDice {
			return fmt.Errorf("%w: face %d count %d exceeds %d", ErrInvalidKeep, i, c, NumDice)
		}
		sum += int(c)
	}
	if sum > NumDice {
		return fmt.Errorf("%w: counts sum to %d, exceeds %d", ErrInvalidKeep, sum, NumDice)
	}
	return nil
}

// Sum returns the number of dice held by the keep.
func (k Keep) Sum() int {
	var sum int
	for _, c := range k {
		sum += int(c)
	}
	return sum
}

// From checks that k can be taken out of r, returning [ErrRerollUnderflow]
// wrapping the offending face index when k holds more of a face than r has.
func (k Keep) From(r Roll) error {
	for i := range k {
		if k[i] > r[i] {
			return fmt.Errorf("%w: face %d", ErrRerollUnderflow, i)
		}
	}
	return nil
}

// String satisfies the [fmt.Stringer] interface.
func (k Keep) String() string {
	return Roll(k).String()
}

// RollsRemaining is the number of rolls remaining in the current turn: 2
// means the upcoming roll is the second of the turn; 0 means the player must
// score now.
type RollsRemaining uint8

// Rolls remaining values.
const (
	NoRollsRemaining  RollsRemaining = 0
	OneRollRemaining  RollsRemaining = 1
	TwoRollsRemaining RollsRemaining = 2
)

// NewRollsRemaining validates n is in {0, 1, 2}.
func NewRollsRemaining(n int) (RollsRemaining, error) {
	if n < 0 || 2 < n {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRollsRemaining, n)
	}
	return RollsRemaining(n), nil
}

// String satisfies the [fmt.Stringer] interface.
func (q RollsRemaining) String() string {
	return fmt.Sprintf("%d", uint8(q))
}

// DiceState is a pair of (roll, rolls remaining). Total distinct values is
// len([DistinctRolls]) * 3 == 756.
type DiceState struct {
	Roll  Roll
	Rolls RollsRemaining
}

// NewDiceState creates and validates a dice state.
func NewDiceState(r Roll, q RollsRemaining) (DiceState, error) {
	if err := r.validate(); err != nil {
		return DiceState{}, err
	}
	if q > TwoRollsRemaining {
		return DiceState{}, fmt.Errorf("%w: %d", ErrInvalidRollsRemaining, q)
	}
	return DiceState{Roll: r, Rolls: q}, nil
}

// Index returns the dense index of the dice state in [0, 756), computed as
// rank(Roll)*3 + Rolls.
func (d DiceState) Index() int {
	return d.Roll.Rank()*3 + int(d.Rolls)
}

// String satisfies the [fmt.Stringer] interface.
func (d DiceState) String() string {
	return fmt.Sprintf("{%s, rolls=%d}", d.Roll, d.Rolls)
}
