package usecase

import "regexp"

const (
	// defaultDueTime is used when no time phrase is recognized in a segment.
	defaultDueTime = "20:00:00"

	// maxTitleLen caps extracted titles.
	maxTitleLen = 100
)

// Segmentation: commas, semicolons, or the standalone word "and".
var segmentRe = regexp.MustCompile(`(?i)[,;]|\band\b`)

// Time phrases, tried in priority order. First match wins.
var (
	// "at 3pm", "at 3:30pm", "@3pm"
	timeAtMeridiemRe = regexp.MustCompile(`(?:at|@)\s*(\d{1,2}):?(\d{2})?\s*(am|pm)`)
	// "3pm", "10am" without a marker
	timeBareMeridiemRe = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	// "15:00", "3:30" — 24-hour or ambiguous
	timeColonRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// Date phrases.
var weekdayRe = regexp.MustCompile(`\b(?:by|on)?\s*(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

// Title cleanup: scheduling phrases stripped from the segment before it
// becomes a title.
var titleStripRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:at|@)\s*\d{1,2}:?\d{0,2}\s*(?:am|pm)?\b`),
	regexp.MustCompile(`(?i)\btomorrow\b`),
	regexp.MustCompile(`(?i)\btoday\b`),
	regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
	regexp.MustCompile(`(?i)\bnext week\b`),
	regexp.MustCompile(`(?i)\bby\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
}

// categoryRule pairs a label with the keywords that select it.
type categoryRule struct {
	label string
	re    *regexp.Regexp
}

// categoryRules are evaluated in order against the original (lower-cased)
// segment; the first match wins.
var categoryRules = []categoryRule{
	{"Meals", regexp.MustCompile(`\b(groceries|grocery|food|cook|meal|dinner|lunch|breakfast|eat)\b`)},
	{"Fitness", regexp.MustCompile(`\b(gym|workout|exercise|run|jog|fitness|yoga|sport)\b`)},
	{"Work", regexp.MustCompile(`\b(work|project|meeting|deadline|client|email|presentation)\b`)},
	{"Personal", regexp.MustCompile(`\b(call|text|mom|dad|family|friend|visit|birthday)\b`)},
	{"Shopping", regexp.MustCompile(`\b(shop|buy|purchase|order|get|pick up)\b`)},
	{"Learning", regexp.MustCompile(`\b(study|learn|read|course|book|homework)\b`)},
	{"Health", regexp.MustCompile(`\b(doctor|dentist|appointment|checkup|medicine)\b`)},
	{"Home", regexp.MustCompile(`\b(clean|laundry|dishes|vacuum|organize)\b`)},
}
