package yahtzee

import "math"

// WeightedRoll pairs a resulting roll's dense rank with its probability of
// occurring from a particular reroll.
type WeightedRoll struct {
	Rank int
	Prob float64
}

// rerollTable is the reroll distribution for every keep, indexed by
// [Keep.radix]. Only the [NumDistinctKeeps] valid slots are populated; the
// rest remain nil.
var rerollTable [numRadixSlots][]WeightedRoll

func init() {
	for _, k := range distinctKeeps {
		n := NumDice - k.Sum()
		pow6 := math.Pow(6, float64(n))
		var dist []WeightedRoll
		for _, r := range distinctRolls {
			ok := true
			for i := range k {
				if int(r[i]) < int(k[i]) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			denom := int64(1)
			for i := range k {
				denom *= Factorial(int(r[i]) - int(k[i]))
			}
			p := float64(Factorial(n)) / float64(denom) / pow6
			dist = append(dist, WeightedRoll{Rank: r.Rank(), Prob: p})
		}
		rerollTable[k.radix()] = dist
	}
}

// RerollDistribution returns the distribution over resulting rolls obtained
// by keeping k and rerolling the remaining 5-|k| dice. The probability of
// each resulting roll r is
//
//	P(r|k) = n!/prod_i (r[i]-k[i])! * 6^-n,  n = 5 - |k|
//
// for every r with r[i] >= k[i] for all i. Passing the zero [Keep] (keeping
// nothing) yields the distribution over a fresh roll of all five dice.
func RerollDistribution(k Keep) []WeightedRoll {
	return rerollTable[k.radix()]
}
