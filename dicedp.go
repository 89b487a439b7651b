package yahtzee

// ScorecardMemo is the outer-DP memo type threaded through [DiceDP]: a
// read-only (from the inner DP's perspective) mapping from downstream
// [Scorecard] states to their already-solved expected value.
type ScorecardMemo = Memo[Scorecard, float64]

// DiceDPResult is the output of [DiceDP]: a dense EV table and keep policy
// over all 756 [DiceState] values, indexed by [DiceState.Index].
type DiceDPResult struct {
	E     [NumDiceStates]float64
	Pi    [NumDiceStates]Keep
	HasPi [NumDiceStates]bool
}

// EV returns the expected value of dice state d.
func (res *DiceDPResult) EV(d DiceState) float64 {
	return res.E[d.Index()]
}

// Policy returns the optimal keep for dice state d, and whether rerolling
// is better than stopping and scoring now. A false second return means
// "stop and score now".
func (res *DiceDPResult) Policy(d DiceState) (Keep, bool) {
	i := d.Index()
	return res.Pi[i], res.HasPi[i]
}

// DiceDP solves the per-turn dice-state MDP for scorecard state s, given a
// memo m of already-solved downstream scorecard EVs (every state reachable
// by scoring one more category from s must already be present in m, unless
// it is terminal). Implements the two-pass algorithm:
//
// Pass A computes, for every dice state, the value of stopping and scoring
// now: the best immediate (category score + bonus) plus the downstream EV
// of the resulting scorecard (0 if terminal).
//
// Pass B computes, for every dice state with rolls remaining >= 1, the
// value of rerolling: for every valid keep, the EV of the resulting reroll
// distribution evaluated against the already-finalized dice states one
// roll down. Pass B iterates rolls-remaining ascending from 1 to 2, since
// q=1's reroll values must be finalized before they are read while solving
// q=2. Ties are broken in favor of stopping now (strict improvement is
// required to record a keep policy).
func DiceDP(s Scorecard, m ScorecardMemo, rule JokerRule) *DiceDPResult {
	res := &DiceDPResult{}

	// Pass A: stop-now EVs for every dice state.
	for _, r := range distinctRolls {
		rank := r.Rank()
		for q := RollsRemaining(0); q <= TwoRollsRemaining; q++ {
			idx := rank*3 + int(q)
			res.E[idx] = stopNowValue(s, r, m, rule)
		}
	}

	// Pass B: reroll EVs, q ascending so that q-1 is finalized before q
	// reads it.
	for q := OneRollRemaining; q <= TwoRollsRemaining; q++ {
		for _, r := range distinctRolls {
			rank := r.Rank()
			idx := rank*3 + int(q)
			best := res.E[idx]
			var bestKeep Keep
			hasBestKeep := false
			for _, k := range ValidKeeps(r) {
				ev := 0.0
				for _, wr := range RerollDistribution(k) {
					ev += wr.Prob * res.E[wr.Rank*3+int(q-1)]
				}
				if ev > best {
					best = ev
					bestKeep = k
					hasBestKeep = true
				}
			}
			res.E[idx] = best
			if hasBestKeep {
				res.Pi[idx] = bestKeep
				res.HasPi[idx] = true
			}
		}
	}

	return res
}

// stopNowValue computes the value of scoring roll r immediately against
// scorecard s, the best over every category valid for r.
func stopNowValue(s Scorecard, r Roll, m ScorecardMemo, rule JokerRule) float64 {
	best := 0.0
	for _, c := range s.ValidCategories(r, rule) {
		score, bonus, err := s.ScoreComponents(r, c, rule)
		if err != nil {
			// ValidCategories and ScoreComponents agree by construction;
			// disagreement is a programming error.
			panic("yahtzee: ScoreComponents rejected a category returned by ValidCategories: " + err.Error())
		}
		next, err := s.Apply(c, score)
		if err != nil {
			panic("yahtzee: Apply rejected an Unscored category: " + err.Error())
		}
		down := 0.0
		if !next.IsTerminal() {
			v, ok := m.Get(next)
			if !ok {
				panic("yahtzee: downstream scorecard state missing from memo")
			}
			down = v
		}
		if v := float64(score+bonus) + down; v > best {
			best = v
		}
	}
	return best
}
