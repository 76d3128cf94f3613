package holidays

import "time"

// LunarHoliday is one lunar-calendar holiday resolved to a Gregorian date
// within its year.
type LunarHoliday struct {
	Month time.Month
	Day   int
	Name  string
}

// LunarTable resolves the lunar-calendar holidays of a Gregorian year.
// The default implementation is a precomputed table; a real lunar-calendar
// conversion can be plugged in without touching the substitute-holiday logic.
type LunarTable interface {
	Holidays(year int) []LunarHoliday
}

type monthDay struct {
	Month time.Month
	Day   int
}

// Precomputed dates, valid 2020–2030. Years outside this range have no lunar
// holidays; that is a documented range limit of the table, not something to
// paper over without a real lunar-calendar algorithm.
var seollal = map[int][3]monthDay{
	2020: {{time.January, 24}, {time.January, 25}, {time.January, 26}},
	2021: {{time.February, 11}, {time.February, 12}, {time.February, 13}},
	2022: {{time.January, 31}, {time.February, 1}, {time.February, 2}},
	2023: {{time.February, 20}, {time.February, 21}, {time.February, 22}},
	2024: {{time.February, 9}, {time.February, 10}, {time.February, 11}},
	2025: {{time.January, 28}, {time.January, 29}, {time.January, 30}},
	2026: {{time.February, 16}, {time.February, 17}, {time.February, 18}},
	2027: {{time.February, 5}, {time.February, 6}, {time.February, 7}},
	2028: {{time.February, 25}, {time.February, 26}, {time.February, 27}},
	2029: {{time.February, 12}, {time.February, 13}, {time.February, 14}},
	2030: {{time.February, 2}, {time.February, 3}, {time.February, 4}},
}

var chuseok = map[int][3]monthDay{
	2020: {{time.September, 30}, {time.October, 1}, {time.October, 2}},
	2021: {{time.September, 20}, {time.September, 21}, {time.September, 22}},
	2022: {{time.September, 9}, {time.September, 10}, {time.September, 11}},
	2023: {{time.September, 28}, {time.September, 29}, {time.September, 30}},
	2024: {{time.September, 16}, {time.September, 17}, {time.September, 18}},
	2025: {{time.October, 5}, {time.October, 6}, {time.October, 7}},
	2026: {{time.September, 24}, {time.September, 25}, {time.September, 26}},
	2027: {{time.September, 14}, {time.September, 15}, {time.September, 16}},
	2028: {{time.October, 2}, {time.October, 3}, {time.October, 4}},
	2029: {{time.September, 21}, {time.September, 22}, {time.September, 23}},
	2030: {{time.September, 11}, {time.September, 12}, {time.September, 13}},
}

var buddhaBirthday = map[int]monthDay{
	2020: {time.May, 30},
	2021: {time.June, 19},
	2022: {time.June, 8},
	2023: {time.June, 27},
	2024: {time.June, 15},
	2025: {time.May, 5},
	2026: {time.June, 24},
	2027: {time.June, 13},
	2028: {time.June, 2},
	2029: {time.June, 20},
	2030: {time.June, 9},
}

type fixedLunarTable struct{}

func (fixedLunarTable) Holidays(year int) []LunarHoliday {
	var holidays []LunarHoliday

	if days, ok := seollal[year]; ok {
		names := [3]string{"설날 전날", "설날", "설날 다음날"}
		for i, day := range days {
			holidays = append(holidays, LunarHoliday{
				Month: day.Month,
				Day:   day.Day,
				Name:  names[i],
			})
		}
	}
	if days, ok := chuseok[year]; ok {
		names := [3]string{"추석 전날", "추석", "추석 다음날"}
		for i, day := range days {
			holidays = append(holidays, LunarHoliday{
				Month: day.Month,
				Day:   day.Day,
				Name:  names[i],
			})
		}
	}
	if day, ok := buddhaBirthday[year]; ok {
		holidays = append(holidays, LunarHoliday{
			Month: day.Month,
			Day:   day.Day,
			Name:  "부처님 오신 날",
		})
	}
	return holidays
}

// KoreanLunarTable returns the built-in precomputed table (2020–2030).
func KoreanLunarTable() LunarTable {
	return fixedLunarTable{}
}
