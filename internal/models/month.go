package models

import "strings"

// Month is one of the 12 fixed calendar months used for goal scheduling
// and as summary table columns. The zero value is not a valid month.
type Month string

const (
	January   Month = "january"
	February  Month = "february"
	March     Month = "march"
	April     Month = "april"
	May       Month = "may"
	June      Month = "june"
	July      Month = "july"
	August    Month = "august"
	September Month = "september"
	October   Month = "october"
	November  Month = "november"
	December  Month = "december"
)

// Months lists all months in calendar order.
var Months = [12]Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// Index returns the zero-based calendar position, or -1 for an unknown value.
func (m Month) Index() int {
	for i, month := range Months {
		if month == m {
			return i
		}
	}
	return -1
}

// Valid reports whether m is one of the 12 calendar months.
func (m Month) Valid() bool {
	return m.Index() >= 0
}

// Label returns the capitalized display name, e.g. "March".
func (m Month) Label() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[0])) + string(m[1:])
}

// ParseMonth parses a case-insensitive month name.
func ParseMonth(s string) (Month, bool) {
	m := Month(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Valid()
}
