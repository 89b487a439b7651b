package yahtzee

// NumDistinctRolls is the number of distinct 5-dice roll multisets, C(10,5).
const NumDistinctRolls = 252

// NumDistinctKeeps is the number of distinct keep multisets, sum_{s=0..5}
// C(s+5,5).
const NumDistinctKeeps = 462

// NumDiceStates is the number of distinct [DiceState] values,
// [NumDistinctRolls] * 3.
const NumDiceStates = NumDistinctRolls * 3

// binomMax is the largest n or k for which [BINOM] is tabulated.
const binomMax = 10

// BINOM is the table of binomial coefficients BINOM[n][k] for n, k in [0,
// 10], computed once at package init via Pascal's triangle.
var BINOM [binomMax + 1][binomMax + 1]int64

func init() {
	for n := 0; n <= binomMax; n++ {
		BINOM[n][0] = 1
		for k := 1; k <= n; k++ {
			BINOM[n][k] = BINOM[n-1][k-1]
			if k <= n-1 {
				BINOM[n][k] += BINOM[n-1][k]
			}
		}
	}
}

// Binom returns C(n, k), or 0 when k is out of [0, n].
func Binom(n, k int) int64 {
	if k < 0 || n < k || n < 0 {
		return 0
	}
	return BINOM[n][k]
}

// factorials are the factorials of 0 through 10.
var factorials [binomMax + 1]int64

func init() {
	factorials[0] = 1
	for n := 1; n <= binomMax; n++ {
		factorials[n] = factorials[n-1] * int64(n)
	}
}

// Factorial returns n! for n in [0, 10].
func Factorial(n int) int64 {
	return factorials[n]
}

// distinctRolls is the enumeration of all [Roll] values, in lexicographic
// order on (c[0], ..., c[5]).
var distinctRolls [NumDistinctRolls]Roll

// distinctKeeps is the enumeration of all [Keep] values, grouped by
// ascending sum, and lexicographically within each sum.
var distinctKeeps [NumDistinctKeeps]Keep

func init() {
	i := 0
	var rec func(face, remaining int, cur [NumFaces]uint8)
	rec = func(face, remaining int, cur [NumFaces]uint8) {
		if face == NumFaces-1 {
			cur[face] = uint8(remaining)
			distinctRolls[i] = Roll(cur)
			i++
			return
		}
		for c := 0; c <= remaining; c++ {
			cur[face] = uint8(c)
			rec(face+1, remaining-c, cur)
		}
	}
	rec(0, NumDice, [NumFaces]uint8{})

	j := 0
	for s := 0; s <= NumDice; s++ {
		var recK func(face, remaining int, cur [NumFaces]uint8)
		recK = func(face, remaining int, cur [NumFaces]uint8) {
			if face == NumFaces-1 {
				cur[face] = uint8(remaining)
				distinctKeeps[j] = Keep(cur)
				j++
				return
			}
			for c := 0; c <= remaining; c++ {
				cur[face] = uint8(c)
				recK(face+1, remaining-c, cur)
			}
		}
		recK(0, s, [NumFaces]uint8{})
	}
}

// DistinctRolls returns the 252 distinct roll multisets, in canonical
// (lexicographic) order.
func DistinctRolls() []Roll {
	v := make([]Roll, NumDistinctRolls)
	copy(v, distinctRolls[:])
	return v
}

// DistinctKeeps returns the 462 distinct keep multisets, in canonical order
// (grouped by ascending sum).
func DistinctKeeps() []Keep {
	v := make([]Keep, NumDistinctKeeps)
	copy(v, distinctKeeps[:])
	return v
}

// Rank returns the dense rank of r in [0, 252), via combinatorial
// unranking (stars-and-bars): iterate faces 0..5; for each face f with
// count c[f], for each of the c[f] units placed, add C(remaining-i+facesLeft-1,
// facesLeft-1), where remaining is the dice not yet placed before this
// face and facesLeft = 5-f.
func (r Roll) Rank() int {
	rank := 0
	remaining := NumDice
	for f := 0; f < NumFaces; f++ {
		facesLeft := NumDice - f
		c := int(r[f])
		for i := 0; i < c; i++ {
			rank += int(Binom(remaining-i+facesLeft-1, facesLeft-1))
		}
		remaining -= c
	}
	return rank
}

// radix returns the mixed-radix base-6 index of k over its 6 digits, in [0,
// 6^6). This is a sparse indexing scheme (only [NumDistinctKeeps] of its
// slots are valid keeps), used to key the reroll probability table directly
// off of face counts without a table lookup.
func (k Keep) radix() int {
	idx := 0
	for i := NumFaces - 1; i >= 0; i-- {
		idx = idx*(NumDice+1) + int(k[i])
	}
	return idx
}

// numRadixSlots is the number of distinct values [Keep.radix] can return.
const numRadixSlots = (NumDice + 1) * (NumDice + 1) * (NumDice + 1) * (NumDice + 1) * (NumDice + 1) * (NumDice + 1)

// ValidKeeps returns every keep that is a submultiset of r -- i.e. every k
// with k[i] <= r[i] for all i. len(ValidKeeps(r)) == prod(r[i]+1).
func ValidKeeps(r Roll) []Keep {
	n := 1
	for _, c := range r {
		n *= int(c) + 1
	}
	out := make([]Keep, 0, n)
	var rec func(face int, cur [NumFaces]uint8)
	rec = func(face int, cur [NumFaces]uint8) {
		if face == NumFaces {
			out = append(out, Keep(cur))
			return
		}
		for c := uint8(0); c <= r[face]; c++ {
			cur[face] = c
			rec(face+1, cur)
		}
	}
	rec(0, [NumFaces]uint8{})
	return out
}
