package yahtzee

import "fmt"

// Category is a Yahtzee scoring category.
type Category uint8

// Category values, in the order used throughout this package. The first six
// are the upper section; the remainder are the lower section.
const (
	Aces Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	FullHouse
	ThreeOfAKind
	FourOfAKind
	SmallStraight
	LargeStraight
	Yahtzee
	Chance

	NumCategories = int(Chance) + 1
)

// categoryNames are the display names of each category, indexed by Category.
var categoryNames = [NumCategories]string{
	Aces:          "Aces",
	Twos:          "Twos",
	Threes:        "Threes",
	Fours:         "Fours",
	Fives:         "Fives",
	Sixes:         "Sixes",
	FullHouse:     "Full House",
	ThreeOfAKind:  "Three of a Kind",
	FourOfAKind:   "Four of a Kind",
	SmallStraight: "Small Straight",
	LargeStraight: "Large Straight",
	Yahtzee:       "Yahtzee",
	Chance:        "Chance",
}

// String satisfies the [fmt.Stringer] interface.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// IsUpper reports whether c is an upper-section category (Aces..Sixes).
func (c Category) IsUpper() bool {
	return c <= Sixes
}

// Face returns the 1-indexed die face matching an upper-section category,
// i.e. Aces -> 1, ..., Sixes -> 6. Only valid when [Category.IsUpper]
// reports true.
func (c Category) Face() int {
	return int(c) + 1
}

// CategoryState is the resolution state of a scorecard category slot.
type CategoryState uint8

// Category states.
const (
	// Unscored means the category has not yet been written.
	Unscored CategoryState = iota
	// Scored means a nonzero-or-otherwise-normal score was written.
	Scored
	// Scratched means a zero was written to the Yahtzee category,
	// forfeiting future Yahtzee bonuses. Only applies to [Yahtzee].
	Scratched
)

// String satisfies the [fmt.Stringer] interface.
func (s CategoryState) String() string {
	switch s {
	case Unscored:
		return "Unscored"
	case Scored:
		return "Scored"
	case Scratched:
		return "Scratched"
	default:
		return fmt.Sprintf("CategoryState(%d)", uint8(s))
	}
}

// JokerRule selects how a Yahtzee rolled after the Yahtzee category is
// already resolved restricts the set of valid scoring categories.
type JokerRule uint8

// Joker rules.
const (
	// Forced requires the matching upper-section category to be chosen
	// when it is still Unscored.
	Forced JokerRule = iota
	// FreeChoice applies no such restriction.
	FreeChoice
)

// String satisfies the [fmt.Stringer] interface.
func (rule JokerRule) String() string {
	switch rule {
	case Forced:
		return "Forced"
	case FreeChoice:
		return "FreeChoice"
	default:
		return fmt.Sprintf("JokerRule(%d)", uint8(rule))
	}
}
