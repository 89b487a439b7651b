package yahtzee

import (
	"runtime"
	"sync"
)

// DiceDPConcurrent is a parallel variant of [DiceDP], fanning Pass A out
// over worker goroutines and running Pass B's two rolls-remaining levels as
// separate parallel stages with a barrier between them, using one worker
// per CPU. Produces results identical to [DiceDP]; offered as an optional
// parallel strategy, not used by [ScorecardDP] itself.
func DiceDPConcurrent(s Scorecard, m ScorecardMemo, rule JokerRule) *DiceDPResult {
	res := &DiceDPResult{}
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	runOverRolls := func(f func(r Roll)) {
		var wg sync.WaitGroup
		rollCh := make(chan Roll, workers)
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				for r := range rollCh {
					f(r)
				}
			}()
		}
		for _, r := range distinctRolls {
			rollCh <- r
		}
		close(rollCh)
		wg.Wait()
	}

	// Pass A, parallel over rolls; each roll only ever writes its own 3
	// slots, so no synchronization is needed between workers.
	runOverRolls(func(r Roll) {
		rank := r.Rank()
		v := stopNowValue(s, r, m, rule)
		for q := RollsRemaining(0); q <= TwoRollsRemaining; q++ {
			res.E[rank*3+int(q)] = v
		}
	})

	// Pass B, one barrier-separated stage per rolls-remaining level so that
	// q=1 is fully finalized in res.E before q=2 reads it.
	for q := OneRollRemaining; q <= TwoRollsRemaining; q++ {
		q := q
		runOverRolls(func(r Roll) {
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
		})
	}

	return res
}
