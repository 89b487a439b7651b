package yahtzee

import (
	"errors"
	"testing"
)

func TestScorecardZeroValue(t *testing.T) {
	var s Scorecard
	if s.IsTerminal() {
		t.Fatal("zero-value scorecard should not be terminal")
	}
	if s.ResolvedCount() != 0 {
		t.Fatalf("ResolvedCount = %d, want 0", s.ResolvedCount())
	}
	if s.State(Chance) != Unscored {
		t.Fatalf("State(Chance) = %v, want Unscored", s.State(Chance))
	}
}

func TestScorecardApplyPurity(t *testing.T) {
	var s Scorecard
	before := s
	next, err := s.Apply(Aces, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != before {
		t.Fatalf("Apply mutated the receiver: %+v != %+v", s, before)
	}
	if next.State(Aces) != Scored {
		t.Fatalf("State(Aces) = %v, want Scored", next.State(Aces))
	}
	if next.UpperSum != 3 {
		t.Fatalf("UpperSum = %v, want 3", next.UpperSum)
	}
}

func TestScorecardApplyAlreadyResolved(t *testing.T) {
	s := Scorecard{}
	s, _ = s.Apply(Aces, 3)
	if _, err := s.Apply(Aces, 1); !errors.Is(err, ErrCategoryNotUnscored) {
		t.Fatalf("expected %v, got %v", ErrCategoryNotUnscored, err)
	}
}

func TestScorecardApplyYahtzeeScratch(t *testing.T) {
	var s Scorecard
	next, err := s.Apply(Yahtzee, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.State(Yahtzee) != Scratched {
		t.Fatalf("State(Yahtzee) = %v, want Scratched", next.State(Yahtzee))
	}
}

func TestScorecardUpperBonusCrossing(t *testing.T) {
	s := Scorecard{UpperSum: 60}
	r := roll([6]uint8{0, 0, 3, 0, 0, 2})
	score, bonus, err := s.ScoreComponents(r, Threes, Forced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 9 || bonus != UpperBonusScore {
		t.Fatalf("ScoreComponents = (%d, %d), want (9, %d)", score, bonus, UpperBonusScore)
	}

	after, _ := s.Apply(Threes, score)
	s2 := after
	r2 := roll([6]uint8{0, 0, 0, 0, 3, 2})
	_, bonus2, err := s2.ScoreComponents(r2, Fives, Forced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bonus2 != 0 {
		t.Fatalf("bonus awarded twice: %d", bonus2)
	}
}

func TestScorecardYahtzeeBonus(t *testing.T) {
	var s Scorecard
	s, _ = s.Apply(Yahtzee, 50)
	r := roll([6]uint8{0, 0, 0, 0, 0, 5})
	score, bonus, err := s.ScoreComponents(r, Chance, FreeChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 30 || bonus != YahtzeeBonusScore {
		t.Fatalf("ScoreComponents = (%d, %d), want (30, %d)", score, bonus, YahtzeeBonusScore)
	}
}

func TestScorecardFirstYahtzeeNoBonus(t *testing.T) {
	var s Scorecard
	r := roll([6]uint8{0, 0, 0, 0, 0, 5})
	_, bonus, err := s.ScoreComponents(r, Yahtzee, FreeChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bonus != 0 {
		t.Fatalf("bonus on first Yahtzee: %d, want 0", bonus)
	}
}

func TestScorecardForcedJoker(t *testing.T) {
	var s Scorecard
	s, _ = s.Apply(Yahtzee, 50)
	r := roll([6]uint8{0, 0, 0, 0, 0, 5})
	cats := s.ValidCategories(r, Forced)
	if len(cats) != 1 || cats[0] != Sixes {
		t.Fatalf("ValidCategories = %v, want [Sixes]", cats)
	}
	s2, _ := s.Apply(Sixes, 30)
	cats2 := s2.ValidCategories(r, Forced)
	found := false
	for _, c := range cats2 {
		if c == Sixes {
			found = true
		}
	}
	if found {
		t.Fatalf("Sixes still offered once resolved: %v", cats2)
	}
}

func TestScorecardFreeChoiceJoker(t *testing.T) {
	var s Scorecard
	s, _ = s.Apply(Yahtzee, 50)
	r := roll([6]uint8{0, 0, 0, 0, 0, 5})
	cats := s.ValidCategories(r, FreeChoice)
	if len(cats) != NumCategories-1 {
		t.Fatalf("ValidCategories under FreeChoice = %v, want %d entries", cats, NumCategories-1)
	}
}

func TestScorecardJokerRestrictedError(t *testing.T) {
	var s Scorecard
	s, _ = s.Apply(Yahtzee, 50)
	r := roll([6]uint8{0, 0, 0, 0, 0, 5})
	if _, _, err := s.ScoreComponents(r, Chance, Forced); !errors.Is(err, ErrJokerCategoryRestricted) {
		t.Fatalf("expected %v, got %v", ErrJokerCategoryRestricted, err)
	}
}
