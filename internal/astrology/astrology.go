// Package astrology derives the tropical horoscope sign and the Chinese
// zodiac animal from a birth date. Both are pure lookups.
package astrology

import "time"

type signRange struct {
	name       string
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}

// Inclusive month/day ranges. Capricorn wraps the year boundary and is
// handled as two ranges.
var signs = []signRange{
	{"Aries", time.March, 21, time.April, 19},
	{"Taurus", time.April, 20, time.May, 20},
	{"Gemini", time.May, 21, time.June, 20},
	{"Cancer", time.June, 21, time.July, 22},
	{"Leo", time.July, 23, time.August, 22},
	{"Virgo", time.August, 23, time.September, 22},
	{"Libra", time.September, 23, time.October, 22},
	{"Scorpio", time.October, 23, time.November, 21},
	{"Sagittarius", time.November, 22, time.December, 21},
	{"Capricorn", time.December, 22, time.December, 31},
	{"Capricorn", time.January, 1, time.January, 19},
	{"Aquarius", time.January, 20, time.February, 18},
	{"Pisces", time.February, 19, time.March, 20},
}

var animals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// Horoscope returns the tropical sign for a month/day pair. Every valid
// calendar date falls in exactly one range.
func Horoscope(month time.Month, day int) string {
	for _, s := range signs {
		afterStart := month > s.startMonth || (month == s.startMonth && day >= s.startDay)
		beforeEnd := month < s.endMonth || (month == s.endMonth && day <= s.endDay)
		if afterStart && beforeEnd {
			return s.name
		}
	}
	return ""
}

// Zodiac returns the Chinese zodiac animal for a year. The cycle starts
// with Rat; 1900 is a Rat year, so the index is (year-4) mod 12
// normalized to a non-negative value.
func Zodiac(year int) string {
	idx := (year - 4) % 12
	idx = (idx + 12) % 12
	return animals[idx]
}

// ForDate is a convenience that derives both fields from one date.
func ForDate(t time.Time) (horoscope, zodiac string) {
	return Horoscope(t.Month(), t.Day()), Zodiac(t.Year())
}
