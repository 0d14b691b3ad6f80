package engine

// scanRounds bounds the greedy pass; a hand can hold at most 7 melds.
const scanRounds = 7

// ApproxMeldCount estimates how many melds the cards currently contain
// using a cheap first-found greedy pass: take a wildcard pair if two
// wildcards remain, otherwise the first valid triple by nested index
// enumeration, remove it, and repeat up to 7 times.
//
// This is a heuristic approximation for AI scoring and hints, called
// frequently; it deliberately trades optimality for speed. Authoritative
// win and initial-show checks use CanFinish and FindInitialMelds, which
// must not be replaced by this scanner.
func ApproxMeldCount(cards []Card, isWild WildcardFn) int {
	pool := append([]Card(nil), cards...)
	count := 0
	for count < scanRounds {
		if first, second, ok := firstTwoWild(pool, isWild); ok {
			pool = withoutIndexes(pool, first, second)
			count++
			continue
		}
		i, j, k, found := firstTriple(pool, isWild)
		if !found {
			break
		}
		pool = withoutIndexes(pool, i, j, k)
		count++
	}
	return count
}

func firstTriple(pool []Card, isWild WildcardFn) (int, int, int, bool) {
	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			for k := j + 1; k < len(pool); k++ {
				if IsValidMeld([3]Card{pool[i], pool[j], pool[k]}, isWild) {
					return i, j, k, true
				}
			}
		}
	}
	return 0, 0, 0, false
}
