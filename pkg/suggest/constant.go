package suggest

import "time"

const (
	// DefaultCategory is the generic label used whenever the service cannot
	// produce a better suggestion.
	DefaultCategory = "Brain Dump"

	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 10 * time.Second

	systemPrompt = "You label personal to-do items with exactly one category " +
		"from this list: Meals, Fitness, Work, Personal, Shopping, Learning, " +
		"Health, Home. Reply with the category name only."
)
