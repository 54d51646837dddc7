// Package timeline deriva ventanas de calendario y proyecta el dataset en
// timelines por empresa/producto para reportes filtrados por fecha. Todas las
// funciones son puras sobre sus argumentos; el "ahora" se pasa explícito.
package timeline

import (
	"time"

	"github.com/datco/erp-demo-api/internal/domain"
)

// RangeKind tipo de rango con nombre.
type RangeKind string

// Conjunto cerrado de rangos soportados.
const (
	RangeToday        RangeKind = "today"
	RangeYesterday    RangeKind = "yesterday"
	RangeThisWeek     RangeKind = "this_week"
	RangeLastWeek     RangeKind = "last_week"
	RangeTwoWeeksAgo  RangeKind = "two_weeks_ago"
	RangeThisMonth    RangeKind = "this_month"
	RangeLastMonth    RangeKind = "last_month"
	RangeTwoMonthsAgo RangeKind = "two_months_ago"
	RangeThisQuarter  RangeKind = "this_quarter"
	RangeLastQuarter  RangeKind = "last_quarter"
	RangeThisYear     RangeKind = "this_year"
	RangeCustom       RangeKind = "custom"
)

// DateRange ventana cerrada [Start, End] con etiqueta legible.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Contains contención inclusiva en ambos extremos: Start <= t <= End.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Resolve calcula los límites del rango pedido relativo a now. Para custom
// exige ambos límites (ErrMissingRangeBounds si falta alguno) y los devuelve
// exactamente como llegaron; los demás rangos son totales. Las semanas
// empiezan en domingo; los fines de rango son 23:59:59.999999999.
func Resolve(kind RangeKind, now time.Time, customStart, customEnd *time.Time) (DateRange, error) {
	switch kind {
	case RangeToday:
		return dayRange(now, 0, "오늘"), nil
	case RangeYesterday:
		return dayRange(now, -1, "어제"), nil
	case RangeThisWeek:
		return weekRange(now, 0, "이번 주"), nil
	case RangeLastWeek:
		return weekRange(now, -1, "지난 주"), nil
	case RangeTwoWeeksAgo:
		return weekRange(now, -2, "2주 전"), nil
	case RangeThisMonth:
		return monthRange(now, 0, "이번 달"), nil
	case RangeLastMonth:
		return monthRange(now, -1, "지난 달"), nil
	case RangeTwoMonthsAgo:
		return monthRange(now, -2, "2개월 전"), nil
	case RangeThisQuarter:
		return quarterRange(now, 0, "이번 분기"), nil
	case RangeLastQuarter:
		return quarterRange(now, -1, "지난 분기"), nil
	case RangeThisYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: endOfDay(time.Date(now.Year(), 12, 31, 0, 0, 0, 0, now.Location())), Label: "올해"}, nil
	case RangeCustom:
		if customStart == nil || customEnd == nil {
			return DateRange{}, domain.ErrMissingRangeBounds
		}
		return DateRange{Start: *customStart, End: *customEnd, Label: "사용자 지정"}, nil
	default:
		return DateRange{}, domain.ErrUnknownRangeKind
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func dayRange(now time.Time, dayOffset int, label string) DateRange {
	day := startOfDay(now).AddDate(0, 0, dayOffset)
	return DateRange{Start: day, End: endOfDay(day), Label: label}
}

// weekRange semana domingo–sábado, desplazada weekOffset semanas.
func weekRange(now time.Time, weekOffset int, label string) DateRange {
	sunday := startOfDay(now).AddDate(0, 0, -int(now.Weekday())+7*weekOffset)
	return DateRange{Start: sunday, End: endOfDay(sunday.AddDate(0, 0, 6)), Label: label}
}

func monthRange(now time.Time, monthOffset int, label string) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, monthOffset, 0)
	return DateRange{Start: first, End: endOfDay(first.AddDate(0, 1, -1)), Label: label}
}

func quarterRange(now time.Time, quarterOffset int, label string) DateRange {
	quarter := (int(now.Month()) - 1) / 3
	first := time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 3*quarterOffset, 0)
	return DateRange{Start: first, End: endOfDay(first.AddDate(0, 3, -1)), Label: label}
}
