// Package intent classifies inbound chat messages for the fallback
// response path. Classification is an ordered rule table over
// case-insensitive substring checks; the first matching rule wins.
package intent

import "strings"

// Category is the classified purpose of a message.
type Category string

const (
	Greeting Category = "greeting"
	Music    Category = "music"
	Positive Category = "positive"
	Negative Category = "negative"
	Joke     Category = "joke"
	Thanks   Category = "thanks"
	Help     Category = "help"
	Center   Category = "center"
	Wellness Category = "wellness"
	Question Category = "question"
	Default  Category = "default"
)

// Result is a classification outcome. Mood is set only for Music (empty
// when no mood was detected and the caller should ask). Location is set
// only for Center (empty when no location indicator was found).
type Result struct {
	Category Category
	Mood     string
	Location string
}

// rule pairs a predicate with the category it selects.
type rule struct {
	category Category
	match    func(msg string) bool
}

// rules is evaluated top-down; order encodes priority. Music is checked
// before the mood categories so "I feel happy, recommend a song" is a
// music request, not a positive-feeling one.
var rules = []rule{
	{Greeting, matchAny(greetingWords)},
	{Music, matchAny(musicWords)},
	{Positive, matchAny(positiveWords)},
	{Negative, matchAny(negativeWords)},
	{Joke, matchAny(jokeWords)},
	{Thanks, matchAny(thanksWords)},
	{Help, matchAny(helpWords)},
	{Center, matchCenter},
	{Wellness, matchAny(wellnessWords)},
	{Question, matchAny(questionWords)},
}

// Classify maps a raw message to exactly one Result. It is pure and
// total: a message matching no rule resolves to Default.
func Classify(message string) Result {
	msg := strings.ToLower(message)
	for _, r := range rules {
		if !r.match(msg) {
			continue
		}
		res := Result{Category: r.category}
		switch r.category {
		case Music:
			res.Mood = detectMood(msg)
		case Center:
			res.Location = extractLocation(msg)
		}
		return res
	}
	return Result{Category: Default}
}

// matchAny builds a predicate that is true when any word appears in the
// message.
func matchAny(words []string) func(string) bool {
	return func(msg string) bool {
		return containsAny(msg, words)
	}
}

// matchCenter matches explicit facility keywords, or the compound form
// "suggest ... center/clinic/therapist".
func matchCenter(msg string) bool {
	if containsAny(msg, centerWords) {
		return true
	}
	return strings.Contains(msg, "suggest") &&
		(strings.Contains(msg, "center") ||
			strings.Contains(msg, "clinic") ||
			strings.Contains(msg, "therapist"))
}

func containsAny(msg string, words []string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

// detectMood resolves a song mood from an already-lowered message.
// Checks run in fixed priority order; an empty return means no mood was
// detected and the caller must ask the user rather than guess.
func detectMood(msg string) string {
	switch {
	case containsAny(msg, positiveWords) || strings.Contains(msg, "happy"):
		return "happy"
	case containsAny(msg, negativeWords) || strings.Contains(msg, "sad"):
		return "sad"
	case strings.Contains(msg, "calm") || strings.Contains(msg, "relax") || strings.Contains(msg, "peaceful"):
		return "calm"
	case strings.Contains(msg, "energy") || strings.Contains(msg, "energetic") ||
		strings.Contains(msg, "workout") || strings.Contains(msg, "exercise"):
		return "energetic"
	case strings.Contains(msg, "focus") || strings.Contains(msg, "concentrate") ||
		strings.Contains(msg, "study") || strings.Contains(msg, "work"):
		return "focused"
	}
	return ""
}

// extractLocation pulls a free-text location out of an already-lowered
// message. The first indicator found with text after it wins; the
// location is capped at three whitespace-separated tokens so a trailing
// clause doesn't swallow the rest of the message.
func extractLocation(msg string) string {
	for _, ind := range locationIndicators {
		if !strings.Contains(msg, ind) {
			continue
		}
		parts := strings.SplitN(msg, ind+" ", 2)
		if len(parts) < 2 {
			continue
		}
		words := strings.Fields(strings.TrimSpace(parts[1]))
		if len(words) > 3 {
			words = words[:3]
		}
		if len(words) > 0 {
			return strings.Join(words, " ")
		}
	}
	return ""
}
