package engine

import (
	"fmt"
	"strings"
)

// Settlement is the end-of-round score movement for one reference player.
type Settlement struct {
	MaalDiff int `json:"maalDiff"`
	WinBonus int `json:"winBonus"`
	Total    int `json:"total"`
}

// Settle computes the final adjustment for the player at index ref
// against the rest of the table.
//
// maalTotals holds each player's Maal points (including starting bonus);
// shown and dubli hold the per-player show flags. winner is the winning
// player's index, or -1 for a stalemate round with no winner.
//
// The Maal side is sum(others) − (n−1)×own. On the win/loss side the
// sign convention is debt-positive: the winner's collected amounts are
// summed and negated into the winner's own adjustment, while a loser
// adds what they owe — 3 if they had shown (0 if their own show was
// Dubli), otherwise 10, or 15 when the winner's show was Dubli.
func Settle(ref, winner int, maalTotals []int, shown, dubli []bool) Settlement {
	var s Settlement
	n := len(maalTotals)
	for i, pts := range maalTotals {
		if i != ref {
			s.MaalDiff += pts
		}
	}
	s.MaalDiff -= (n - 1) * maalTotals[ref]

	switch {
	case winner < 0:
		// Stalemate: Maal differences only.
	case ref == winner:
		collected := 0
		for i := 0; i < n; i++ {
			if i == ref {
				continue
			}
			if shown[i] {
				if dubli[ref] {
					collected += 5
				} else {
					collected += 3
				}
			} else {
				if dubli[ref] {
					collected += 15
				} else {
					collected += 10
				}
			}
		}
		s.WinBonus = -collected
	default:
		switch {
		case shown[ref] && dubli[ref]:
			s.WinBonus = 0
		case shown[ref]:
			s.WinBonus = 3
		case dubli[winner]:
			s.WinBonus = 15
		default:
			s.WinBonus = 10
		}
	}

	s.Total = s.MaalDiff + s.WinBonus
	return s
}

// Explain renders a settlement as a short human-readable breakdown for
// the hosting layer to display.
func (s Settlement) Explain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "maal %+d", s.MaalDiff)
	if s.WinBonus != 0 {
		fmt.Fprintf(&b, ", win/loss %+d", s.WinBonus)
	}
	fmt.Fprintf(&b, " = %+d", s.Total)
	return b.String()
}
