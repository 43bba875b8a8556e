// Package fallback produces canned replies when the remote completion
// call cannot be made. Template choice is random for variety only; every
// candidate in a category's set is an equally valid reply.
package fallback

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/solacebot/solace/internal/catalog"
	"github.com/solacebot/solace/internal/intent"
)

// Generator renders fallback replies from classified intents.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator. A nil rng gets a time-seeded source; tests
// inject a fixed seed for deterministic output.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Reply formats a single fallback response for the classified intent.
func (g *Generator) Reply(res intent.Result) string {
	switch res.Category {
	case intent.Music:
		return g.musicReply(res.Mood)
	case intent.Center:
		return g.centerReply(res.Location)
	default:
		return g.pick(templates[res.Category])
	}
}

// pick selects one template uniformly at random. Unknown categories get
// the default set. The rng is shared across handler goroutines, so
// access is serialized.
func (g *Generator) pick(candidates []string) string {
	if len(candidates) == 0 {
		candidates = templates[intent.Default]
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return candidates[g.rng.Intn(len(candidates))]
}

// sample runs a catalog query under the rng lock.
func sampleWith[T any](g *Generator, fn func(*rand.Rand) []T) []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.rng)
}

// musicReply lists up to 3 songs for the detected mood. With no mood it
// asks the user to pick one instead of guessing.
func (g *Generator) musicReply(mood string) string {
	if mood == "" {
		return moodPrompt
	}
	songs := sampleWith(g, func(rng *rand.Rand) []catalog.Song {
		return catalog.SongsByMood(rng, mood, 3)
	})
	if len(songs) == 0 {
		return noSongs
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are some songs that might match your %s mood:\n\n", mood)
	for i, s := range songs {
		fmt.Fprintf(&b, "%d. %q by %s\n", i+1, s.Title, s.Artist)
		link := s.Link
		if link == "" {
			query := strings.ReplaceAll(s.Artist+" "+s.Title, " ", "+")
			link = "https://www.youtube.com/results?search_query=" + query
		}
		fmt.Fprintf(&b, "   Listen here: %s\n", link)
	}
	b.WriteString(songClosing)
	return b.String()
}

// centerReply lists up to 3 wellness centers (location-filtered when a
// location was extracted) plus up to 2 online resources. The crisis
// notice is appended to every variant of this reply.
func (g *Generator) centerReply(location string) string {
	centers := sampleWith(g, func(rng *rand.Rand) []catalog.Center {
		return catalog.Centers(rng, location, 3)
	})
	if len(centers) == 0 {
		return noCenters + "\n\n" + crisisNotice
	}

	var b strings.Builder
	b.WriteString(centerHeading)
	for i, c := range centers {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Name)
		fmt.Fprintf(&b, "   %s\n", c.Description)
		fmt.Fprintf(&b, "   Location: %s\n", c.Location)
		fmt.Fprintf(&b, "   Phone: %s\n", c.Phone)
		fmt.Fprintf(&b, "   Website: %s\n", c.Website)
		fmt.Fprintf(&b, "   Google Search: %s\n\n", c.SearchURL)
	}

	resources := sampleWith(g, func(rng *rand.Rand) []catalog.Resource {
		return catalog.OnlineResources(rng, 2)
	})
	if len(resources) > 0 {
		b.WriteString("Online Resources:\n\n")
		for i, r := range resources {
			fmt.Fprintf(&b, "%d. %s\n", i+1, r.Name)
			fmt.Fprintf(&b, "   %s\n", r.Description)
			fmt.Fprintf(&b, "   Website: %s\n", r.Website)
			fmt.Fprintf(&b, "   Google Search: %s\n\n", r.SearchURL)
		}
	}

	b.WriteString(centerClosing)
	b.WriteString(crisisNotice)
	return b.String()
}
