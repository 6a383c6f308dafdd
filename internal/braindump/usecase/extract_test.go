package usecase

import (
	"testing"
	"time"
)

// Wednesday.
var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    string
		wantOK  bool
	}{
		{"at + pm", "meeting at 3pm", "15:00:00", true},
		{"at + pm with minutes", "meeting at 3:30pm", "15:30:00", true},
		{"at + am", "standup at 9am", "09:00:00", true},
		{"@ marker", "call @5pm", "17:00:00", true},
		{"12am is midnight", "flight at 12am", "00:00:00", true},
		{"12pm is noon", "lunch at 12pm", "12:00:00", true},
		{"bare meridiem", "gym 6pm", "18:00:00", true},
		{"bare am", "run 7am", "07:00:00", true},
		{"24-hour colon form", "review 15:00 notes", "15:00:00", true},
		{"small colon hour bumped to afternoon", "pick up kids 3:30", "15:30:00", true},
		{"hour seven bumped", "dinner 7:45", "19:45:00", true},
		{"hour eight taken literally", "breakfast 8:00", "08:00:00", true},
		{"no time phrase", "buy groceries", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractTime(tt.segment)
			if ok != tt.wantOK {
				t.Fatalf("extractTime(%q) ok = %v, want %v", tt.segment, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("extractTime(%q) = %q, want %q", tt.segment, got, tt.want)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    string
		wantOK  bool
	}{
		{"today", "finish report today", "2024-05-01", true},
		{"tomorrow", "call mom tomorrow", "2024-05-02", true},
		{"upcoming weekday", "submit by friday", "2024-05-03", true},
		{"on weekday", "dentist on monday", "2024-05-06", true},
		{"bare weekday", "laundry saturday", "2024-05-04", true},
		{"same weekday rolls a full week", "review wednesday", "2024-05-08", true},
		{"next week", "plan trip next week", "2024-05-08", true},
		{"weekend means next saturday", "clean garage this weekend", "2024-05-04", true},
		{"today beats weekday", "today and friday", "2024-05-01", true},
		{"no date phrase", "buy groceries", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractDate(tt.segment, testNow)
			if ok != tt.wantOK {
				t.Fatalf("extractDate(%q) ok = %v, want %v", tt.segment, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("extractDate(%q) = %q, want %q", tt.segment, got, tt.want)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    string
	}{
		{"strips time and date", "buy groceries tomorrow at 5pm", "Buy groceries"},
		{"strips weekday", "submit report friday", "Submit report"},
		{"strips today", "water the plants today", "Water the plants"},
		{"strips next week", "plan the trip next week", "Plan the trip"},
		{"capitalizes first rune", "call the dentist", "Call the dentist"},
		{"already capitalized", "Email the client", "Email the client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanTitle(tt.segment); got != tt.want {
				t.Errorf("cleanTitle(%q) = %q, want %q", tt.segment, got, tt.want)
			}
		})
	}
}

func TestCleanTitleTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcde"
	}
	got := cleanTitle(long)
	if n := len([]rune(got)); n != maxTitleLen {
		t.Errorf("cleanTitle long input: got %d runes, want %d", n, maxTitleLen)
	}
}

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		segment string
		want    string
	}{
		{"buy groceries for dinner", "Meals"},
		{"gym session", "Fitness"},
		{"finish the client presentation", "Work"},
		{"call mom", "Personal"},
		{"order new shoes", "Shopping"},
		{"read the go book", "Learning"},
		{"dentist appointment", "Health"},
		{"do the laundry", "Home"},
		{"something unmatched", "Brain Dump"},
		// "cook" outranks "buy": rules are ordered and the first match wins.
		{"buy stuff to cook", "Meals"},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			if got := guessCategory(tt.segment); got != tt.want {
				t.Errorf("guessCategory(%q) = %q, want %q", tt.segment, got, tt.want)
			}
		})
	}
}
