package holidays

import (
	"time"
)

// Fixed national holidays, every year
var fixedHolidays = []struct {
	Month time.Month
	Day   int
	Name  string
}{
	{time.January, 1, "신정"},
	{time.March, 1, "삼일절"},
	{time.May, 5, "어린이날"},
	{time.June, 6, "현충일"},
	{time.August, 15, "광복절"},
	{time.October, 3, "개천절"},
	{time.October, 9, "한글날"},
	{time.December, 25, "크리스마스"},
}

type Calculator struct {
	lunar LunarTable
}

func NewCalculator(lunar LunarTable) *Calculator {
	if lunar == nil {
		lunar = KoreanLunarTable()
	}
	return &Calculator{lunar: lunar}
}

type namedDate struct {
	date time.Time
	name string
}

// substituteFor returns the replacement weekday when the holiday lands on a
// weekend: Sunday moves to the next Monday, Saturday to the Monday after.
func substituteFor(holiday time.Time) (time.Time, bool) {
	switch holiday.Weekday() {
	case time.Sunday:
		return holiday.AddDate(0, 0, 1), true
	case time.Saturday:
		return holiday.AddDate(0, 0, 2), true
	}
	return time.Time{}, false
}

func (c *Calculator) allHolidays(year int) []namedDate {
	var all []namedDate
	for _, fixed := range fixedHolidays {
		all = append(all, namedDate{
			date: time.Date(year, fixed.Month, fixed.Day, 0, 0, 0, 0, time.Local),
			name: fixed.Name,
		})
	}
	for _, lunar := range c.lunar.Holidays(year) {
		all = append(all, namedDate{
			date: time.Date(year, lunar.Month, lunar.Day, 0, 0, 0, 0, time.Local),
			name: lunar.Name,
		})
	}
	return all
}

// ForYear returns every public holiday of the year, substitute holidays
// included, deduplicated by calendar date. Substitute dates are not re-checked
// against other holidays.
func (c *Calculator) ForYear(year int) []time.Time {
	all := c.allHolidays(year)

	var holidays []time.Time
	for _, holiday := range all {
		holidays = append(holidays, holiday.date)
	}
	for _, holiday := range all {
		if substitute, ok := substituteFor(holiday.date); ok {
			holidays = append(holidays, substitute)
		}
	}
	// Dedup by date
	seen := make(map[string]bool)
	var unique []time.Time
	for _, holiday := range holidays {
		key := holiday.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, holiday)
	}
	return unique
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (c *Calculator) IsPublicHoliday(date time.Time) bool {
	for _, holiday := range c.ForYear(date.Year()) {
		if sameDate(holiday, date) {
			return true
		}
	}
	return false
}

// Name returns the display name of the holiday falling on date. Substitute
// holidays are named after the holiday they replace. Dates that are no holiday
// at all fall through to the generic label.
func (c *Calculator) Name(date time.Time) string {
	all := c.allHolidays(date.Year())
	for _, holiday := range all {
		if sameDate(holiday.date, date) {
			return holiday.name
		}
	}
	for _, holiday := range all {
		if substitute, ok := substituteFor(holiday.date); ok && sameDate(substitute, date) {
			return holiday.name + " 대체휴일"
		}
	}
	return "공휴일"
}
