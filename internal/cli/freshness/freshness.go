// Package freshness classifies pantry dates into discrete urgency levels
// and renders them as human-readable labels.
package freshness

import (
	"time"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
)

// Level — дискретная «свежесть» продукта.
type Level string

const (
	Expired  Level = "expired"
	Critical Level = "critical"
	Warning  Level = "warning"
	Ok       Level = "ok"
	Fresh    Level = "fresh"
)

// AllLevels перечисляет уровни от худшего к лучшему.
var AllLevels = []Level{Expired, Critical, Warning, Ok, Fresh}

// ParseLevel validates a user-supplied level name.
func ParseLevel(s string) (Level, bool) {
	for _, l := range AllLevels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// DateKind — какая из дат продукта управляет свежестью.
type DateKind string

const (
	KindExpiry     DateKind = "expiry"
	KindBestBefore DateKind = "bestbefore"
	KindAdded      DateKind = "added"
)

// TimeDiff — расстояние от now до целевой даты.
// Days/Weeks/Months — абсолютные величины; знак хранится в Past.
type TimeDiff struct {
	Days   int // round(|ms| / сутки)
	Weeks  int // ceil(Days / 7)
	Months int // ceil(Days / 30)
	Past   bool
}

const dayMillis = 24 * 60 * 60 * 1000

// Diff вычисляет TimeDiff между target и now.
func Diff(target, now time.Time) TimeDiff {
	ms := target.UnixMilli() - now.UnixMilli()
	days := int(roundDiv(ms, dayMillis))
	abs := days
	if abs < 0 {
		abs = -abs
	}
	return TimeDiff{
		Days:   abs,
		Weeks:  ceilDiv(abs, 7),
		Months: ceilDiv(abs, 30),
		Past:   ms < 0,
	}
}

// roundDiv — деление с округлением к ближайшему;
// ровно половина округляется в сторону +∞ (-1.5 → -1, 1.5 → 2).
func roundDiv(a, b int64) int64 {
	if a >= 0 {
		return (a + b/2) / b
	}
	return -((-a + b/2 - 1) / b)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Classify возвращает уровень свежести для даты указанного вида.
// nil-дата означает «нет повода для беспокойства» — всегда fresh.
func Classify(date *model.Date, kind DateKind, now time.Time) Level {
	if date == nil || date.IsZero() {
		return Fresh
	}

	diff := Diff(date.Time(), now)

	switch kind {
	case KindExpiry:
		switch {
		case diff.Past:
			return Expired
		case diff.Days <= 2:
			return Critical
		case diff.Days <= 7:
			return Warning
		case diff.Days <= 14:
			return Ok
		default:
			return Fresh
		}

	case KindBestBefore:
		switch {
		case diff.Past && diff.Days > 30:
			return Expired
		case diff.Past && diff.Days >= 14:
			return Critical
		case diff.Past:
			return Warning
		case diff.Days <= 7:
			return Ok
		default:
			return Fresh
		}

	default: // KindAdded: обратная шкала — старые «added-only» записи подсвечиваются
		switch {
		case diff.Days <= 2:
			return Fresh
		case diff.Days <= 7:
			return Ok
		case diff.Days <= 14:
			return Warning
		default:
			return Critical
		}
	}
}

// ItemDate выбирает дату, управляющую свежестью записи:
// expiry > bestbefore > added (первая непустая).
func ItemDate(item model.FoodItem) (*model.Date, DateKind) {
	if item.ExpiryDate != nil && !item.ExpiryDate.IsZero() {
		return item.ExpiryDate, KindExpiry
	}
	if item.BestBeforeDate != nil && !item.BestBeforeDate.IsZero() {
		return item.BestBeforeDate, KindBestBefore
	}
	d := item.AddedDate
	return &d, KindAdded
}

// ClassifyItem — свежесть записи по её приоритетной дате.
func ClassifyItem(item model.FoodItem, now time.Time) Level {
	date, kind := ItemDate(item)
	return Classify(date, kind, now)
}

// ANSI-коды для терминального рендера (оригинальная палитра была hex-цветами).
var levelColors = map[Level]string{
	Expired:  "\033[90m", // grey
	Critical: "\033[31m", // red
	Warning:  "\033[33m", // yellow
	Ok:       "\033[93m", // yellow-green
	Fresh:    "\033[32m", // green
}

// Color возвращает ANSI-префикс уровня.
func Color(l Level) string { return levelColors[l] }

// ColorReset сбрасывает терминальный цвет.
const ColorReset = "\033[0m"
