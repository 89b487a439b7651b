package yahtzee

import "fmt"

// Scorecard is an immutable snapshot of a partially (or fully) filled
// Yahtzee scorecard: the capped upper-section running total, and the
// resolution state of each of the 13 categories. The zero value is an
// empty scorecard (a new game).
type Scorecard struct {
	UpperSum   UpperSum
	Categories [NumCategories]CategoryState
}

// State returns the resolution state of category c.
func (s Scorecard) State(c Category) CategoryState {
	return s.Categories[c]
}

// IsTerminal reports whether every category slot is resolved (non-Unscored).
func (s Scorecard) IsTerminal() bool {
	for _, st := range s.Categories {
		if st == Unscored {
			return false
		}
	}
	return true
}

// ResolvedCount returns the number of non-Unscored category slots.
func (s Scorecard) ResolvedCount() int {
	n := 0
	for _, st := range s.Categories {
		if st != Unscored {
			n++
		}
	}
	return n
}

// isJoker reports whether r, scored against s, is a joker: a Yahtzee rolled
// when the Yahtzee category is already resolved. The current scorecard
// state is read fresh on every call -- never cached -- since a stale joker
// determination would silently corrupt both [Scorecard.ValidCategories] and
// scoring.
func (s Scorecard) isJoker(r Roll) bool {
	_, ok := IsYahtzeeRoll(r)
	return ok && s.Categories[Yahtzee] != Unscored
}

// ValidCategories returns the categories that may legally be chosen for
// roll r under rule. Under [Forced], a joker roll whose matching
// upper-section category is still Unscored must be scored there; the
// restriction does not otherwise narrow the choice of category, and
// [FreeChoice] never narrows it.
func (s Scorecard) ValidCategories(r Roll, rule JokerRule) []Category {
	if rule == Forced && s.isJoker(r) {
		if face, ok := IsYahtzeeRoll(r); ok && s.Categories[face] == Unscored {
			return []Category{face}
		}
	}
	var out []Category
	for c := Category(0); int(c) < NumCategories; c++ {
		if s.Categories[c] == Unscored {
			out = append(out, c)
		}
	}
	return out
}

// isValidCategory reports whether c is among r's valid categories under
// rule.
func (s Scorecard) isValidCategory(r Roll, c Category, rule JokerRule) bool {
	for _, v := range s.ValidCategories(r, rule) {
		if v == c {
			return true
		}
	}
	return false
}

// ScoreComponents returns the (categoryScore, bonusScore) pair for scoring
// roll r into category c under rule, without mutating s. Returns
// [ErrCategoryNotUnscored] if c is already resolved, or
// [ErrJokerCategoryRestricted] if c is not among r's valid categories under a
// [Forced] joker restriction.
func (s Scorecard) ScoreComponents(r Roll, c Category, rule JokerRule) (int, int, error) {
	if s.Categories[c] != Unscored {
		return 0, 0, fmt.Errorf("%w: %s", ErrCategoryNotUnscored, c)
	}
	if !s.isValidCategory(r, c, rule) {
		return 0, 0, fmt.Errorf("%w: %s", ErrJokerCategoryRestricted, c)
	}
	isJoker := s.isJoker(r)
	score := ScoreValue(r, c, isJoker)
	bonus := 0
	if c.IsUpper() {
		before := s.UpperSum
		after := before.Add(score)
		if before < UpperBonusThreshold && after == UpperBonusThreshold {
			bonus += UpperBonusScore
		}
	}
	if _, ok := IsYahtzeeRoll(r); ok && s.Categories[Yahtzee] == Scored {
		bonus += YahtzeeBonusScore
	}
	return score, bonus, nil
}

// Apply writes score into category c's slot, returning the new scorecard.
// The receiver is never mutated. Precondition: c must be Unscored; violating
// it returns [ErrCategoryNotUnscored]. Writes [Scratched] instead of
// [Scored] when c is [Yahtzee] and score is 0.
func (s Scorecard) Apply(c Category, score int) (Scorecard, error) {
	if s.Categories[c] != Unscored {
		return Scorecard{}, fmt.Errorf("%w: %s", ErrCategoryNotUnscored, c)
	}
	next := s
	if c == Yahtzee && score == 0 {
		next.Categories[Yahtzee] = Scratched
	} else {
		next.Categories[c] = Scored
	}
	if c.IsUpper() {
		next.UpperSum = s.UpperSum.Add(score)
	}
	return next, nil
}
