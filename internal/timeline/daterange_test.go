package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datco/erp-demo-api/internal/domain"
	"github.com/datco/erp-demo-api/internal/timeline"
)

// "Ahora" fijado: sábado 2024-06-15 10:30 UTC.
var now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func resolve(t *testing.T, kind timeline.RangeKind) timeline.DateRange {
	t.Helper()
	r, err := timeline.Resolve(kind, now, nil, nil)
	require.NoError(t, err)
	return r
}

func TestResolve_ThisMonth(t *testing.T) {
	r := resolve(t, timeline.RangeThisMonth)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC), r.End)

	// Contención inclusiva: el propio "ahora" está dentro; un instante antes
	// del inicio o después del fin está fuera.
	assert.True(t, r.Contains(now))
	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.Start.Add(-time.Nanosecond)))
	assert.False(t, r.Contains(r.End.Add(time.Nanosecond)))
}

func TestResolve_TodayYAyer(t *testing.T) {
	today := resolve(t, timeline.RangeToday)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), today.Start)
	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, 999999999, time.UTC), today.End)
	assert.Equal(t, "오늘", today.Label)

	yesterday := resolve(t, timeline.RangeYesterday)
	assert.Equal(t, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), yesterday.Start)
	assert.Equal(t, time.Date(2024, 6, 14, 23, 59, 59, 999999999, time.UTC), yesterday.End)
}

// TestResolve_Semanas las semanas van de domingo a sábado; el 15-06-2024 es
// sábado, así que esta semana empieza el domingo 9.
func TestResolve_Semanas(t *testing.T) {
	thisWeek := resolve(t, timeline.RangeThisWeek)
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), thisWeek.Start)
	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, 999999999, time.UTC), thisWeek.End)

	lastWeek := resolve(t, timeline.RangeLastWeek)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), lastWeek.Start)

	twoWeeksAgo := resolve(t, timeline.RangeTwoWeeksAgo)
	assert.Equal(t, time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC), twoWeeksAgo.Start)
	assert.Equal(t, time.Date(2024, 6, 1, 23, 59, 59, 999999999, time.UTC), twoWeeksAgo.End)
}

func TestResolve_Meses(t *testing.T) {
	lastMonth := resolve(t, timeline.RangeLastMonth)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), lastMonth.Start)
	assert.Equal(t, time.Date(2024, 5, 31, 23, 59, 59, 999999999, time.UTC), lastMonth.End)

	twoMonthsAgo := resolve(t, timeline.RangeTwoMonthsAgo)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), twoMonthsAgo.Start)
	assert.Equal(t, time.Date(2024, 4, 30, 23, 59, 59, 999999999, time.UTC), twoMonthsAgo.End)
}

func TestResolve_Trimestres(t *testing.T) {
	thisQuarter := resolve(t, timeline.RangeThisQuarter)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), thisQuarter.Start)
	assert.Equal(t, time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC), thisQuarter.End)

	lastQuarter := resolve(t, timeline.RangeLastQuarter)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), lastQuarter.Start)
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC), lastQuarter.End)
}

func TestResolve_ThisYear(t *testing.T) {
	r := resolve(t, timeline.RangeThisYear)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC), r.End)
}

// TestResolve_CustomSinLimites custom sin ambos límites es un error que se
// propaga al llamador, nunca se degrada en silencio.
func TestResolve_CustomSinLimites(t *testing.T) {
	_, err := timeline.Resolve(timeline.RangeCustom, now, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingRangeBounds)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = timeline.Resolve(timeline.RangeCustom, now, &start, nil)
	assert.ErrorIs(t, err, domain.ErrMissingRangeBounds)
}

// TestResolve_CustomConLimites con ambos límites devuelve exactamente esos
// límites, sin normalizarlos al inicio/fin de día.
func TestResolve_CustomConLimites(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)
	end := time.Date(2024, 3, 20, 18, 45, 0, 0, time.UTC)

	r, err := timeline.Resolve(timeline.RangeCustom, now, &start, &end)
	require.NoError(t, err)
	assert.Equal(t, start, r.Start)
	assert.Equal(t, end, r.End)
}

func TestResolve_RangoDesconocido(t *testing.T) {
	_, err := timeline.Resolve(timeline.RangeKind("fortnight"), now, nil, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownRangeKind)
}
