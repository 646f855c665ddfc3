// ABOUTME: Weekday indices used by repeat days (0=Sunday..6=Saturday).
// ABOUTME: Provides names, initials, and parsing of user-entered day lists.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// WeekdayNames maps weekday index to full name.
var WeekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// WeekdayInitials maps weekday index to the three-letter label shown on cards.
var WeekdayInitials = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ParseWeekday parses a weekday name, prefix of at least three letters,
// or index 0-6.
func ParseWeekday(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty weekday")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday %d out of range 0-6", n)
		}
		return n, nil
	}
	if len(s) >= 3 {
		for i, name := range WeekdayNames {
			if strings.HasPrefix(strings.ToLower(name), s) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown weekday: %s", s)
}

// ParseWeekdays parses a comma-separated day list such as "mon,wed,fri".
// The shortcuts "daily", "weekdays" and "weekends" are also accepted.
func ParseWeekdays(s string) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "daily", "all":
		return []int{0, 1, 2, 3, 4, 5, 6}, nil
	case "weekdays":
		return []int{1, 2, 3, 4, 5}, nil
	case "weekends":
		return []int{0, 6}, nil
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		d, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// FormatWeekdays renders repeat days as initials in the given order.
func FormatWeekdays(days []int) string {
	labels := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < len(WeekdayInitials) {
			labels = append(labels, WeekdayInitials[d])
		}
	}
	return strings.Join(labels, " ")
}
