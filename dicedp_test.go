package yahtzee

import "testing"

// onlyUnscored returns a Scorecard with every category Scored except want,
// which is left Unscored.
func onlyUnscored(want Category) Scorecard {
	var cats [NumCategories]CategoryState
	for c := range cats {
		if Category(c) != want {
			cats[c] = Scored
		}
	}
	return Scorecard{Categories: cats}
}

// TestDiceDPTerminalZero: a fully-resolved scorecard offers no category to
// score into, so every dice state's stop-now value is 0.
func TestDiceDPTerminalZero(t *testing.T) {
	var cats [NumCategories]CategoryState
	for c := range cats {
		cats[c] = Scored
	}
	s := Scorecard{Categories: cats}
	memo := NewMapMemo[Scorecard, float64]()
	res := DiceDP(s, memo, Forced)
	for _, r := range distinctRolls {
		for q := RollsRemaining(0); q <= TwoRollsRemaining; q++ {
			d, _ := NewDiceState(r, q)
			if ev := res.EV(d); ev != 0 {
				t.Fatalf("roll %v q=%v: EV = %v, want 0", r, q, ev)
			}
		}
	}
}

// TestDiceDPYahtzeeOnlyUnscored: with Yahtzee the only open category, the
// stop-now value with no rolls remaining is 50 for a Yahtzee roll and 0
// otherwise.
func TestDiceDPYahtzeeOnlyUnscored(t *testing.T) {
	s := onlyUnscored(Yahtzee)
	memo := NewMapMemo[Scorecard, float64]()
	res := DiceDP(s, memo, Forced)

	yahtzeeRoll := roll([6]uint8{0, 0, 0, 0, 0, 5})
	d, _ := NewDiceState(yahtzeeRoll, NoRollsRemaining)
	if ev := res.EV(d); ev != 50 {
		t.Fatalf("Yahtzee roll, no rerolls: EV = %v, want 50", ev)
	}

	other := roll([6]uint8{1, 1, 1, 1, 1, 0})
	d2, _ := NewDiceState(other, NoRollsRemaining)
	if ev := res.EV(d2); ev != 0 {
		t.Fatalf("non-Yahtzee roll, no rerolls: EV = %v, want 0", ev)
	}
}

// TestDiceDPMonotonicity is invariant 6: more rolls remaining never hurts.
func TestDiceDPMonotonicity(t *testing.T) {
	s := onlyUnscored(Chance)
	memo := NewMapMemo[Scorecard, float64]()
	res := DiceDP(s, memo, Forced)
	for _, r := range distinctRolls {
		rank := r.Rank()
		e0 := res.E[rank*3+int(NoRollsRemaining)]
		e1 := res.E[rank*3+int(OneRollRemaining)]
		e2 := res.E[rank*3+int(TwoRollsRemaining)]
		if e1 < e0-1e-9 {
			t.Fatalf("roll %v: E(q=1)=%v < E(q=0)=%v", r, e1, e0)
		}
		if e2 < e1-1e-9 {
			t.Fatalf("roll %v: E(q=2)=%v < E(q=1)=%v", r, e2, e1)
		}
	}
}

// TestDiceDPChancePolicyKeepsHighDice: when only Chance (sum of all pips)
// remains, it is never optimal to reroll a face of 6, since its expected
// replacement (3.5) is strictly worse.
func TestDiceDPChancePolicyKeepsHighDice(t *testing.T) {
	s := onlyUnscored(Chance)
	memo := NewMapMemo[Scorecard, float64]()
	res := DiceDP(s, memo, Forced)

	r := roll([6]uint8{1, 1, 1, 1, 0, 1})
	d, _ := NewDiceState(r, TwoRollsRemaining)
	k, hasKeep := res.Policy(d)
	if !hasKeep {
		t.Fatal("expected a reroll policy for a low, mixed roll")
	}
	if k[5] != r[5] {
		t.Fatalf("policy rerolled a 6: keep=%v, roll=%v", k, r)
	}
}

// TestDiceDPYahtzeeAlreadyScoredDoesNotReofferYahtzee: once Yahtzee is
// resolved, scoring a Yahtzee roll elsewhere must route through the joker
// bonus rather than the Yahtzee category itself.
func TestDiceDPYahtzeeAlreadyScoredDoesNotReofferYahtzee(t *testing.T) {
	var s Scorecard
	s, err := s.Apply(Yahtzee, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	memo := NewMapMemo[Scorecard, float64]()
	// Resolve every remaining category except Chance, so Chance is the only
	// open category: every transition from s is terminal and the memo needs
	// no downstream entries.
	for c := Category(0); int(c) < NumCategories; c++ {
		if c == Yahtzee || c == Chance {
			continue
		}
		s, err = s.Apply(c, 0)
		if err != nil {
			t.Fatalf("unexpected error resolving %v: %v", c, err)
		}
	}
	res := DiceDP(s, memo, Forced)
	yahtzeeRoll := roll([6]uint8{0, 0, 0, 0, 0, 5})
	d, _ := NewDiceState(yahtzeeRoll, NoRollsRemaining)
	if ev := res.EV(d); ev != 30+YahtzeeBonusScore {
		t.Fatalf("EV = %v, want %v", ev, 30+YahtzeeBonusScore)
	}
}
