package freshness

import (
	"fmt"
	"time"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
)

const absoluteLayout = "02 Jan 2006"

// FormatRelative — короткая относительная подпись даты:
// «Added · 3d ago», «Expires in · 5d», «Best before · 2w ago».
func FormatRelative(date *model.Date, kind DateKind, now time.Time) string {
	if date == nil || date.IsZero() {
		return ""
	}
	diff := Diff(date.Time(), now)

	if kind == KindAdded {
		switch {
		case diff.Days < 7:
			return fmt.Sprintf("Added · %dd ago", diff.Days)
		case diff.Weeks < 5:
			return fmt.Sprintf("Added · %dw ago", diff.Weeks)
		default:
			return fmt.Sprintf("Added · %dm ago", diff.Months)
		}
	}

	if diff.Past {
		prefix := "Expired"
		if kind == KindBestBefore {
			prefix = "Best before"
		}
		switch {
		case diff.Days < 7:
			return fmt.Sprintf("%s · %dd ago", prefix, diff.Days)
		case diff.Weeks < 5:
			return fmt.Sprintf("%s · %dw ago", prefix, diff.Weeks)
		default:
			return fmt.Sprintf("%s · %dm ago", prefix, diff.Months)
		}
	}

	prefix := "Expires in"
	if kind == KindBestBefore {
		prefix = "Best before in"
	}
	switch {
	case diff.Days <= 7:
		return fmt.Sprintf("%s · %dd", prefix, diff.Days)
	case diff.Weeks <= 4:
		return fmt.Sprintf("%s · %dw", prefix, diff.Weeks)
	default:
		return fmt.Sprintf("%s · %dm", prefix, diff.Months)
	}
}

// FormatAbsolute — полная подпись с календарной датой:
// «Expires on 14 Sep 2026», «Best before passed on 02 Jan 2026».
func FormatAbsolute(date *model.Date, kind DateKind, now time.Time) string {
	if date == nil || date.IsZero() {
		return ""
	}
	when := date.Time().Format(absoluteLayout)

	if kind == KindAdded {
		return "Added on " + when
	}

	past := Diff(date.Time(), now).Past
	switch {
	case kind == KindExpiry && past:
		return "Expired on " + when
	case kind == KindExpiry:
		return "Expires on " + when
	case past:
		return "Best before passed on " + when
	default:
		return "Best before on " + when
	}
}

// ItemLabel — относительная подпись записи по её приоритетной дате.
func ItemLabel(item model.FoodItem, now time.Time) string {
	date, kind := ItemDate(item)
	return FormatRelative(date, kind, now)
}
