package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymori/shogistats/internal/calendar"
	"github.com/ymori/shogistats/internal/model"
	"github.com/ymori/shogistats/internal/profile"
)

func date(s string) *calendar.Date {
	d := calendar.MustParse(s)
	return &d
}

var refToday = calendar.MustParse("2023-06-01")

func TestEnrichAge(t *testing.T) {
	rows := profile.Enrich([]model.Player{
		{Name: "Habu", Birth: date("1970-09-27")},
	}, refToday)
	require.Len(t, rows, 1)

	e := rows[0]
	require.NotNil(t, e.Age)
	assert.Equal(t, calendar.Duration{Years: 52, Months: 8, Days: 5}, *e.Age)
	require.NotNil(t, e.AgeDays)
	assert.False(t, e.FinalAge)
}

func TestEnrichFinalAge(t *testing.T) {
	rows := profile.Enrich([]model.Player{
		{
			Name:   "Oyama",
			Status: model.StatusDeceased,
			Birth:  date("1923-03-13"),
			Death:  date("1992-07-26"),
		},
	}, refToday)

	e := rows[0]
	require.NotNil(t, e.Age)
	assert.True(t, e.FinalAge)
	assert.Equal(t, calendar.Duration{Years: 69, Months: 4, Days: 13}, *e.Age)
}

func TestEnrichPromotionAges(t *testing.T) {
	p := model.Player{Name: "Tanaka", Birth: date("1990-01-01")}
	p.Promotions[0] = date("2010-04-01") // 4-dan
	p.Promotions[1] = date("2012-10-01") // 5-dan

	e := profile.Enrich([]model.Player{p}, refToday)[0]

	require.NotNil(t, e.PromotionAge[0])
	assert.Equal(t, calendar.Duration{Years: 20, Months: 3, Days: 0}, *e.PromotionAge[0])
	require.NotNil(t, e.PromotionGap[0])
	assert.Equal(t, calendar.Duration{Years: 2, Months: 6, Days: 0}, *e.PromotionGap[0])

	// Promotions that have not happened stay absent.
	for tier := 2; tier < model.NumPromotionTiers; tier++ {
		assert.Nil(t, e.PromotionAge[tier], "tier %d", tier)
		assert.Nil(t, e.PromotionAgeDays[tier], "tier %d", tier)
	}
	for g := 1; g < model.NumPromotionTiers-1; g++ {
		assert.Nil(t, e.PromotionGap[g], "gap %d", g)
	}
}

func TestEnrichMissingBirth(t *testing.T) {
	p := model.Player{Name: "Unknown"}
	p.Promotions[0] = date("1950-04-01")

	e := profile.Enrich([]model.Player{p}, refToday)[0]

	assert.Nil(t, e.Age)
	assert.Nil(t, e.AgeDays)
	assert.Nil(t, e.PromotionAge[0], "promotion age needs a birth date")
	assert.Nil(t, e.ActiveAge)
	// Tenure needs only the first promotion and an end date.
	require.NotNil(t, e.Tenure)
}

func TestUnifiedEnd(t *testing.T) {
	cases := []struct {
		name   string
		player model.Player
		want   *calendar.Date
	}{
		{
			name:   "active player ends today",
			player: model.Player{Status: model.StatusActive},
			want:   date("2023-06-01"),
		},
		{
			name: "retired player ends at retirement",
			player: model.Player{
				Status:     model.StatusRetired,
				Retirement: date("2000-03-31"),
			},
			want: date("2000-03-31"),
		},
		{
			name: "retirement wins over a later death",
			player: model.Player{
				Status:     model.StatusDeceased,
				Retirement: date("2000-03-31"),
				Death:      date("2010-01-15"),
			},
			want: date("2000-03-31"),
		},
		{
			name: "death in harness ends at death",
			player: model.Player{
				Status: model.StatusDiedActive,
				Death:  date("1992-07-26"),
			},
			want: date("1992-07-26"),
		},
		{
			name:   "no end date recorded",
			player: model.Player{Status: model.StatusRetired},
			want:   nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := profile.Enrich([]model.Player{c.player}, refToday)[0]
			if c.want == nil {
				assert.Nil(t, e.UnifiedEnd)
				assert.Nil(t, e.Tenure)
				assert.Nil(t, e.ActiveAge)
				return
			}
			require.NotNil(t, e.UnifiedEnd)
			assert.Equal(t, *c.want, *e.UnifiedEnd)
		})
	}
}

func TestEnrichTenure(t *testing.T) {
	p := model.Player{
		Name:       "Kato",
		Status:     model.StatusRetired,
		Birth:      date("1940-01-01"),
		Retirement: date("2017-06-20"),
	}
	p.Promotions[0] = date("1954-08-01")

	e := profile.Enrich([]model.Player{p}, refToday)[0]

	require.NotNil(t, e.Tenure)
	assert.Equal(t, calendar.Duration{Years: 62, Months: 10, Days: 19}, *e.Tenure)
	require.NotNil(t, e.ActiveAge)
	assert.Equal(t, calendar.Duration{Years: 77, Months: 5, Days: 19}, *e.ActiveAge)
}

func TestEnrichEmptyInput(t *testing.T) {
	rows := profile.Enrich(nil, refToday)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSortAbsentValuesStayLast(t *testing.T) {
	mk := func(name string, birth string) model.Player {
		p := model.Player{Name: name}
		if birth != "" {
			p.Birth = date(birth)
		}
		return p
	}
	rows := profile.Enrich([]model.Player{
		mk("NoBirth", ""),
		mk("Old", "1940-05-05"),
		mk("Young", "1995-05-05"),
	}, refToday)

	profile.Sort(rows, profile.ModeAge, profile.OrderAsc)
	assert.Equal(t, []string{"Young", "Old", "NoBirth"}, names(rows))

	profile.Sort(rows, profile.ModeAge, profile.OrderDesc)
	assert.Equal(t, []string{"Old", "Young", "NoBirth"}, names(rows))
}

func TestSortKeepLeavesOrder(t *testing.T) {
	rows := profile.Enrich([]model.Player{
		{Name: "B", Seat: 2},
		{Name: "A", Seat: 1},
	}, refToday)
	profile.Sort(rows, profile.ModeSeat, profile.OrderKeep)
	assert.Equal(t, []string{"B", "A"}, names(rows))

	profile.Sort(rows, profile.ModeSeat, profile.OrderAsc)
	assert.Equal(t, []string{"A", "B"}, names(rows))
}

func TestSortByPromotionAge(t *testing.T) {
	mk := func(name, birth, promo4 string) model.Player {
		p := model.Player{Name: name, Birth: date(birth)}
		p.Promotions[0] = date(promo4)
		return p
	}
	rows := profile.Enrich([]model.Player{
		mk("Late", "1970-01-01", "1998-04-01"),
		mk("Early", "1970-01-01", "1985-04-01"),
	}, refToday)

	profile.Sort(rows, profile.PromotionAgeMode(4), profile.OrderAsc)
	assert.Equal(t, []string{"Early", "Late"}, names(rows))
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{
		"seat", "number", "age", "tenure", "active-age",
		"promo-age-4", "promo-age-9", "gap-4to5", "gap-8to9",
	} {
		_, err := profile.ParseMode(s)
		assert.NoError(t, err, "mode %q", s)
	}
	for _, s := range []string{"", "promo-age-3", "promo-age-10", "gap-4to6", "gap-9to10", "elo"} {
		_, err := profile.ParseMode(s)
		assert.Error(t, err, "mode %q", s)
	}
}

func TestParseOrder(t *testing.T) {
	for _, s := range []string{"keep", "asc", "desc"} {
		_, err := profile.ParseOrder(s)
		assert.NoError(t, err)
	}
	_, err := profile.ParseOrder("up")
	assert.Error(t, err)
}

func names(rows []profile.Enriched) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}
