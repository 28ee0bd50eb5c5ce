package profile

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Mode names a sortable profile view.
type Mode string

const (
	ModeSeat      Mode = "seat"
	ModeNumber    Mode = "number"
	ModeAge       Mode = "age"
	ModeTenure    Mode = "tenure"
	ModeActiveAge Mode = "active-age"
)

// PromotionAgeMode is the view sorted by the age at promotion to the given
// dan (4..9).
func PromotionAgeMode(dan int) Mode {
	return Mode(fmt.Sprintf("promo-age-%d", dan))
}

// GapMode is the view sorted by the span between two adjacent promotions
// (dan 4..8 to dan+1).
func GapMode(dan int) Mode {
	return Mode(fmt.Sprintf("gap-%dto%d", dan, dan+1))
}

var (
	promoAgeRe = regexp.MustCompile(`^promo-age-([4-9])$`)
	gapRe      = regexp.MustCompile(`^gap-([4-8])to([5-9])$`)
)

// ParseMode reads a user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSeat, ModeNumber, ModeAge, ModeTenure, ModeActiveAge:
		return Mode(s), nil
	}
	if promoAgeRe.MatchString(s) {
		return Mode(s), nil
	}
	if m := gapRe.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if hi == lo+1 {
			return Mode(s), nil
		}
	}
	return "", fmt.Errorf("unknown profile mode %q", s)
}

// PromotionTier returns the promotion tier index a mode refers to, or -1.
// For gap modes this is the lower promotion's tier.
func (m Mode) PromotionTier() int {
	if sub := promoAgeRe.FindStringSubmatch(string(m)); sub != nil {
		dan, _ := strconv.Atoi(sub[1])
		return dan - 4
	}
	if sub := gapRe.FindStringSubmatch(string(m)); sub != nil {
		dan, _ := strconv.Atoi(sub[1])
		return dan - 4
	}
	return -1
}

// IsGap reports whether the mode views an inter-promotion span.
func (m Mode) IsGap() bool {
	return gapRe.MatchString(string(m))
}

// Order is a sort direction; OrderKeep leaves the roster order untouched.
type Order string

const (
	OrderKeep Order = "keep"
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder reads a user-supplied order name.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderKeep, OrderAsc, OrderDesc:
		return Order(s), nil
	}
	return "", fmt.Errorf("unknown order %q (want keep, asc or desc)", s)
}

// Sort orders rows in place by the mode's day-count key. Rows missing the
// key sort after every row that has it, in both directions. The sort is
// stable, so equal or missing keys keep roster order.
func Sort(rows []Enriched, mode Mode, order Order) {
	if order == OrderKeep {
		return
	}
	dir := 1
	if order == OrderDesc {
		dir = -1
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return numCompare(sortValue(&rows[i], mode), sortValue(&rows[j], mode), dir) < 0
	})
}

// sortValue extracts the mode's comparison key; nil means the row has no
// value for this view.
func sortValue(e *Enriched, mode Mode) *int {
	switch mode {
	case ModeSeat:
		v := e.Seat
		return &v
	case ModeNumber:
		v := e.Number
		return &v
	case ModeAge:
		return e.AgeDays
	case ModeTenure:
		return e.TenureDays
	case ModeActiveAge:
		return e.ActiveAgeDays
	}
	if t := mode.PromotionTier(); t >= 0 {
		if mode.IsGap() {
			return e.PromotionGapDays[t]
		}
		return e.PromotionAgeDays[t]
	}
	return nil
}

// numCompare orders two optional values; direction applies only when both
// are present, so absent values land at the bottom either way.
func numCompare(a, b *int, dir int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return (*a - *b) * dir
	}
}
