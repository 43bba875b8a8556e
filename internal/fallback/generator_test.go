package fallback

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/solacebot/solace/internal/intent"
)

func testGen() *Generator {
	return New(rand.New(rand.NewSource(1)))
}

func TestReply_TemplateCategories(t *testing.T) {
	categories := []intent.Category{
		intent.Greeting, intent.Positive, intent.Negative, intent.Joke,
		intent.Thanks, intent.Help, intent.Wellness, intent.Question,
		intent.Default,
	}
	gen := testGen()
	for _, cat := range categories {
		t.Run(string(cat), func(t *testing.T) {
			got := gen.Reply(intent.Result{Category: cat})
			if !slices.Contains(templates[cat], got) {
				t.Errorf("reply %q not in %s template set", got, cat)
			}
		})
	}
}

func TestReply_TemplateSelectionVaries(t *testing.T) {
	gen := testGen()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[gen.Reply(intent.Result{Category: intent.Joke})] = true
	}
	if len(seen) < 2 {
		t.Error("50 joke replies produced a single template; selection should vary")
	}
}

func TestReply_MusicNoMood(t *testing.T) {
	got := testGen().Reply(intent.Result{Category: intent.Music})
	if got != moodPrompt {
		t.Errorf("reply = %q, want the mood clarifying question", got)
	}
}

func TestReply_MusicWithMood(t *testing.T) {
	got := testGen().Reply(intent.Result{Category: intent.Music, Mood: "energetic"})

	if !strings.HasPrefix(got, "Here are some songs that might match your energetic mood:") {
		t.Errorf("missing heading: %q", got)
	}
	for _, n := range []string{"1. ", "2. ", "3. "} {
		if !strings.Contains(got, n) {
			t.Errorf("missing entry %q", n)
		}
	}
	if strings.Contains(got, "4. ") {
		t.Error("more than 3 entries")
	}
	if c := strings.Count(got, "Listen here: "); c != 3 {
		t.Errorf("Listen here lines = %d, want 3", c)
	}
	if !strings.Contains(got, songClosing) {
		t.Error("missing closing sentence")
	}
}

func TestReply_MusicSynthesizedLink(t *testing.T) {
	// Every focused-mood song has no explicit link, so all three lines
	// must carry a synthesized search URL with +-joined artist/title.
	got := testGen().Reply(intent.Result{Category: intent.Music, Mood: "focused"})
	if c := strings.Count(got, "https://www.youtube.com/results?search_query="); c != 3 {
		t.Fatalf("synthesized links = %d, want 3", c)
	}
	for _, line := range strings.Split(got, "\n") {
		if idx := strings.Index(line, "search_query="); idx >= 0 {
			query := line[idx+len("search_query="):]
			if !strings.Contains(query, "+") {
				t.Errorf("query %q not +-joined", query)
			}
			if strings.Contains(query, " ") {
				t.Errorf("query %q contains spaces", query)
			}
		}
	}
}

func TestReply_CenterContainsCrisisNotice(t *testing.T) {
	gen := testGen()
	for _, location := range []string{"", "ohio", "atlantis"} {
		got := gen.Reply(intent.Result{Category: intent.Center, Location: location})
		if !strings.Contains(got, crisisNotice) {
			t.Errorf("location %q: reply missing crisis notice", location)
		}
	}
}

func TestReply_CenterFormat(t *testing.T) {
	got := testGen().Reply(intent.Result{Category: intent.Center})

	if !strings.HasPrefix(got, centerHeading) {
		t.Error("missing heading")
	}
	for _, want := range []string{"Location: ", "Phone: ", "Website: ", "Google Search: "} {
		if !strings.Contains(got, want) {
			t.Errorf("missing field %q", want)
		}
	}
	if !strings.Contains(got, "Online Resources:\n\n") {
		t.Error("missing online resources block")
	}
	if !strings.Contains(got, centerClosing) {
		t.Error("missing closing paragraph")
	}
	if !strings.HasSuffix(got, crisisNotice) {
		t.Error("crisis notice is not the final line")
	}
}

func TestReply_CenterLocationFiltered(t *testing.T) {
	got := testGen().Reply(intent.Result{Category: intent.Center, Location: "massachusetts"})
	if !strings.Contains(got, "McLean Hospital") {
		t.Errorf("expected the Massachusetts center, got: %q", got)
	}
	if !strings.Contains(got, crisisNotice) {
		t.Error("missing crisis notice")
	}
}

func TestReply_CenterUnmatchedLocationFallsBack(t *testing.T) {
	// An unmatched location silently uses the full catalog; the reply
	// still lists three centers.
	got := testGen().Reply(intent.Result{Category: intent.Center, Location: "atlantis"})
	if c := strings.Count(got, "Location: "); c != 3 {
		t.Errorf("center entries = %d, want 3", c)
	}
}

func TestNew_NilRNG(t *testing.T) {
	gen := New(nil)
	got := gen.Reply(intent.Result{Category: intent.Greeting})
	if !slices.Contains(templates[intent.Greeting], got) {
		t.Errorf("reply %q not in greeting template set", got)
	}
}
