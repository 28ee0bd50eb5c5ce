// Package profile derives the date-based career fields for player
// biographies: ages, ages at each dan promotion, the gaps between adjacent
// promotions, and the career tenure against a unified end-of-activity date.
// Every derived field is optional; a missing source date yields nil, never a
// zero stand-in.
package profile

import (
	"github.com/ymori/shogistats/internal/calendar"
	"github.com/ymori/shogistats/internal/model"
)

// Enriched is a player plus the derived fields. Each duration carries a
// day-count twin; day counts are what the sort modes compare, since two
// years/months/days breakdowns do not order cleanly.
type Enriched struct {
	model.Player

	// Age is birth -> today, or birth -> death when a death date exists;
	// FinalAge marks the latter.
	Age      *calendar.Duration `json:"age,omitempty"`
	AgeDays  *int               `json:"ageDays,omitempty"`
	FinalAge bool               `json:"finalAge,omitempty"`

	// PromotionAge[i] is birth -> promotion to dan model.PromotionDan(i).
	PromotionAge     [model.NumPromotionTiers]*calendar.Duration `json:"promotionAge"`
	PromotionAgeDays [model.NumPromotionTiers]*int               `json:"promotionAgeDays"`

	// PromotionGap[i] spans the promotion to dan 4+i -> dan 5+i.
	PromotionGap     [model.NumPromotionTiers - 1]*calendar.Duration `json:"promotionGap"`
	PromotionGapDays [model.NumPromotionTiers - 1]*int               `json:"promotionGapDays"`

	// UnifiedEnd is the single end-of-activity date: today while active,
	// else retirement, else death, else absent.
	UnifiedEnd *calendar.Date `json:"unifiedEnd,omitempty"`

	// Tenure is first promotion -> unified end; ActiveAge is birth ->
	// unified end.
	Tenure        *calendar.Duration `json:"tenure,omitempty"`
	TenureDays    *int               `json:"tenureDays,omitempty"`
	ActiveAge     *calendar.Duration `json:"activeAge,omitempty"`
	ActiveAgeDays *int               `json:"activeAgeDays,omitempty"`
}

// Enrich derives the date fields for every player against the given
// reference date. The input slice is not modified.
func Enrich(players []model.Player, today calendar.Date) []Enriched {
	out := make([]Enriched, 0, len(players))
	for i := range players {
		out = append(out, enrichOne(players[i], today))
	}
	return out
}

func enrichOne(p model.Player, today calendar.Date) Enriched {
	e := Enriched{Player: p}

	if p.Birth != nil {
		end := today
		if p.Death != nil {
			end = *p.Death
			e.FinalAge = true
		}
		e.Age, e.AgeDays = span(*p.Birth, end)
	}

	for t := 0; t < model.NumPromotionTiers; t++ {
		if p.Birth != nil && p.Promotions[t] != nil {
			e.PromotionAge[t], e.PromotionAgeDays[t] = span(*p.Birth, *p.Promotions[t])
		}
	}
	for t := 0; t+1 < model.NumPromotionTiers; t++ {
		if p.Promotions[t] != nil && p.Promotions[t+1] != nil {
			e.PromotionGap[t], e.PromotionGapDays[t] = span(*p.Promotions[t], *p.Promotions[t+1])
		}
	}

	e.UnifiedEnd = unifiedEnd(p, today)
	if e.UnifiedEnd != nil {
		if p.Promotions[0] != nil {
			e.Tenure, e.TenureDays = span(*p.Promotions[0], *e.UnifiedEnd)
		}
		if p.Birth != nil {
			e.ActiveAge, e.ActiveAgeDays = span(*p.Birth, *e.UnifiedEnd)
		}
	}
	return e
}

// unifiedEnd resolves the end-of-activity date. Retirement is consulted
// before death so a player who retired and later died keeps the
// retirement-bounded career span.
func unifiedEnd(p model.Player, today calendar.Date) *calendar.Date {
	if p.Status == model.StatusActive {
		d := today
		return &d
	}
	if p.Retirement != nil {
		d := *p.Retirement
		return &d
	}
	if p.Death != nil {
		d := *p.Death
		return &d
	}
	return nil
}

func span(from, to calendar.Date) (*calendar.Duration, *int) {
	d := calendar.Diff(from, to)
	n := calendar.DayCount(from, to)
	return &d, &n
}
