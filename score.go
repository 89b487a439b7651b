package yahtzee

// sumOfPips returns the sum of the pip values of every die in the roll.
func sumOfPips(r Roll) int {
	sum := 0
	for i, c := range r {
		sum += (i + 1) * int(c)
	}
	return sum
}

// maxRun returns the length of the longest run of consecutive faces with a
// positive count in r.
func maxRun(r Roll) int {
	best, cur := 0, 0
	for _, c := range r {
		if c > 0 {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}
	return best
}

// IsYahtzeeRoll reports whether r is five-of-a-kind, returning the matching
// upper-section category.
func IsYahtzeeRoll(r Roll) (Category, bool) {
	for i, c := range r {
		if c == NumDice {
			return Category(i), true
		}
	}
	return 0, false
}

// ScoreValue returns the immediate score for scoring r into category c,
// treating the roll as a joker (for FullHouse/SmallStraight/LargeStraight)
// when isJoker is true. This is the category score only; upper-section and
// Yahtzee bonuses are computed separately, since they depend on scorecard
// state beyond the roll and category (see [Scorecard.ScoreComponents]).
func ScoreValue(r Roll, c Category, isJoker bool) int {
	switch c {
	case Aces, Twos, Threes, Fours, Fives, Sixes:
		return r.Count(c.Face()-1) * c.Face()
	case ThreeOfAKind:
		if hasCount(r, 3) {
			return sumOfPips(r)
		}
		return 0
	case FourOfAKind:
		if hasCount(r, 4) {
			return sumOfPips(r)
		}
		return 0
	case FullHouse:
		if isJoker || isFullHouse(r) {
			return 25
		}
		return 0
	case SmallStraight:
		if isJoker || maxRun(r) >= 4 {
			return 30
		}
		return 0
	case LargeStraight:
		if isJoker || maxRun(r) >= 5 {
			return 40
		}
		return 0
	case Yahtzee:
		if _, ok := IsYahtzeeRoll(r); ok {
			return 50
		}
		return 0
	case Chance:
		return sumOfPips(r)
	default:
		return 0
	}
}

// hasCount reports whether any face in r has a count of at least n.
func hasCount(r Roll, n int) bool {
	for _, c := range r {
		if int(c) >= n {
			return true
		}
	}
	return false
}

// isFullHouse reports whether r has a literal full house: some face with
// count 3 and a different face with count 2.
func isFullHouse(r Roll) bool {
	has3, has2 := false, false
	for _, c := range r {
		switch c {
		case 3:
			has3 = true
		case 2:
			has2 = true
		}
	}
	return has3 && has2
}
