package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/priyanka7rc/laya/pkg/suggest"
	"github.com/priyanka7rc/laya/pkg/weekdate"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// extractTime pulls a due time (HH:MM:00) out of a segment. The three
// patterns are tried in priority order; ok is false when none match.
func extractTime(segment string) (string, bool) {
	lower := strings.ToLower(segment)

	// Pattern 1: explicit marker + meridiem ("at 3pm", "at 3:30pm", "@3pm")
	if m := timeAtMeridiemRe.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := m[2]
		if minutes == "" {
			minutes = "00"
		}
		return formatTime(normalizeMeridiem(hours, m[3]), minutes), true
	}

	// Pattern 2: bare hour + meridiem ("3pm", "10am")
	if m := timeBareMeridiemRe.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return formatTime(normalizeMeridiem(hours, m[2]), "00"), true
	}

	// Pattern 3: colon form without meridiem ("15:00", "3:30").
	// Bare small hours are assumed to mean afternoon/evening: hours 1-7 get
	// bumped by 12. Hour 0 and hours >= 8 are taken literally. A known
	// arbitrary rule — keep it as-is.
	if m := timeColonRe.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		if hours > 0 && hours < 8 {
			hours += 12
		}
		return formatTime(hours, m[2]), true
	}

	return "", false
}

func normalizeMeridiem(hours int, meridiem string) int {
	if meridiem == "pm" && hours < 12 {
		hours += 12
	}
	if meridiem == "am" && hours == 12 {
		hours = 0
	}
	return hours
}

func formatTime(hours int, minutes string) string {
	return fmt.Sprintf("%02d:%s:00", hours, minutes)
}

// extractDate pulls a due date (ISO) out of a segment relative to now.
// Rules are tried in priority order; ok is false when none match.
func extractDate(segment string, now time.Time) (string, bool) {
	lower := strings.ToLower(segment)

	if strings.Contains(lower, "today") {
		return weekdate.Format(now), true
	}
	if strings.Contains(lower, "tomorrow") {
		return weekdate.Format(now.AddDate(0, 0, 1)), true
	}

	// "by friday", "on friday", or just "friday" — always strictly future:
	// a bare weekday never resolves to today.
	if m := weekdayRe.FindStringSubmatch(lower); m != nil {
		return weekdate.Format(weekdate.NextWeekday(now, weekdays[m[1]])), true
	}

	if strings.Contains(lower, "next week") {
		return weekdate.Format(now.AddDate(0, 0, 7)), true
	}
	if strings.Contains(lower, "weekend") {
		return weekdate.Format(weekdate.NextWeekday(now, time.Saturday)), true
	}

	return "", false
}

// cleanTitle strips scheduling phrases from a segment, capitalizes the first
// rune, and truncates to maxTitleLen characters.
func cleanTitle(segment string) string {
	title := segment
	for _, re := range titleStripRes {
		title = re.ReplaceAllString(title, "")
	}
	title = strings.TrimSpace(title)
	title = capitalizeFirst(title)
	return truncate(title, maxTitleLen)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// guessCategory matches the original segment (not the cleaned title) against
// the keyword groups in priority order.
func guessCategory(segment string) string {
	lower := strings.ToLower(segment)
	for _, rule := range categoryRules {
		if rule.re.MatchString(lower) {
			return rule.label
		}
	}
	return suggest.DefaultCategory
}
