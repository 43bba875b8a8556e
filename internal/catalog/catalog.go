// Package catalog holds the static content tables the fallback engine
// draws from: songs grouped by mood, wellness centers, and online
// mental-health resources. All data is immutable and lives in-process.
package catalog

import (
	"math/rand"
	"slices"
	"strings"
)

// Song is a single recommendation in the mood catalog. Link is optional;
// when empty, callers synthesize a search URL from Artist and Title.
type Song struct {
	Title  string
	Artist string
	Link   string
}

// Center describes a wellness center or clinical facility.
type Center struct {
	Name        string
	Description string
	Location    string
	Phone       string
	Website     string
	SearchURL   string
	Services    []string
}

// Resource describes an online mental-health resource. Unlike Center it
// has no physical location or phone.
type Resource struct {
	Name        string
	Description string
	Website     string
	SearchURL   string
	Services    []string
}

// Moods returns the supported song moods in a stable order.
func Moods() []string {
	return []string{"happy", "sad", "calm", "energetic", "focused"}
}

// SongsByMood returns up to n songs for the given mood, drawn without
// replacement using rng when the table holds more than n. Unknown moods
// yield nil.
func SongsByMood(rng *rand.Rand, mood string, n int) []Song {
	songs, ok := songsByMood[mood]
	if !ok {
		return nil
	}
	return sample(rng, songs, n)
}

// Centers returns up to n wellness centers. When location is non-empty it
// is matched case-insensitively against each center's Location field; a
// filter that matches nothing silently falls back to the full table so
// the caller always has something to show.
func Centers(rng *rand.Rand, location string, n int) []Center {
	pool := centers
	if location != "" {
		loc := strings.ToLower(location)
		var filtered []Center
		for _, c := range centers {
			if strings.Contains(strings.ToLower(c.Location), loc) {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}
	return sample(rng, pool, n)
}

// OnlineResources returns up to n online resources.
func OnlineResources(rng *rand.Rand, n int) []Resource {
	return sample(rng, onlineResources, n)
}

// sample draws up to n elements without replacement. When the pool fits
// within n it is returned whole, in table order.
func sample[T any](rng *rand.Rand, pool []T, n int) []T {
	if n >= len(pool) {
		return slices.Clone(pool)
	}
	out := make([]T, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}
