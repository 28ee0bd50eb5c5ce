package aggregator

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the primary standings column.
type SortKey string

const (
	KeyAppearances SortKey = "appearances"
	KeyWins        SortKey = "wins"
	KeyLosses      SortKey = "losses"
	KeyWinRate     SortKey = "winrate"
)

// ParseSortKey reads a user-supplied key name.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case KeyAppearances, KeyWins, KeyLosses, KeyWinRate:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (want appearances, wins, losses or winrate)", s)
}

// newCollator builds the collator used for every name comparison. Player
// names are Japanese; collating instead of comparing bytes keeps the
// tie-broken order stable across import sources. Collators are not safe for
// concurrent use, so each aggregation builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.Japanese)
}

// denseRanks assigns competition ranks over rows already in display order: a
// row shares its predecessor's rank when samePrimary says so, otherwise its
// rank is its 1-based position. Three tied rows at the top are all rank 1
// and the next row is rank 4.
func denseRanks[T any](rows []T, samePrimary func(a, b T) bool, set func(row *T, rank int)) {
	rank := 0
	for i := range rows {
		if i == 0 || !samePrimary(rows[i-1], rows[i]) {
			rank = i + 1
		}
		set(&rows[i], rank)
	}
}
