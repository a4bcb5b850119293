package music

import "testing"

func TestExtractSongAndArtist(t *testing.T) {
	cue := Extract("🎵 Twinkle Twinkle Little Star by Kids Songs - Let's sing along!")
	if cue == nil {
		t.Fatal("expected a music cue")
	}
	if cue.Title != "Twinkle Twinkle Little Star" {
		t.Fatalf("unexpected title: %q", cue.Title)
	}
	if cue.Artist != "Kids Songs" {
		t.Fatalf("unexpected artist: %q", cue.Artist)
	}
	if cue.SearchQuery != "Twinkle%20Twinkle%20Little%20Star%20Kids%20Songs" {
		t.Fatalf("unexpected search query: %q", cue.SearchQuery)
	}
}

func TestExtractNoMusic(t *testing.T) {
	if cue := Extract("Just a plain reply with no music."); cue != nil {
		t.Fatalf("expected nil cue, got %+v", cue)
	}
	if cue := Extract(""); cue != nil {
		t.Fatalf("expected nil cue for empty text, got %+v", cue)
	}
}

func TestExtractArtistEndsAtPeriod(t *testing.T) {
	cue := Extract("🎵 Hallelujah by Leonard Cohen. A classic for a quiet evening.")
	if cue == nil {
		t.Fatal("expected a music cue")
	}
	if cue.Artist != "Leonard Cohen" {
		t.Fatalf("unexpected artist: %q", cue.Artist)
	}
}

func TestExtractArtistWithPeriodInName(t *testing.T) {
	// The first period terminates the artist, so suffixes like "Jr." are cut.
	cue := Extract("🎵 What a Wonderful World by Sammy Davis Jr. Enjoy!")
	if cue == nil {
		t.Fatal("expected a music cue")
	}
	if cue.Artist != "Sammy Davis Jr" {
		t.Fatalf("unexpected artist: %q", cue.Artist)
	}
}

func TestExtractFirstCueOnly(t *testing.T) {
	cue := Extract("🎵 First Song by Alpha. 🎵 Second Song by Beta.")
	if cue == nil {
		t.Fatal("expected a music cue")
	}
	if cue.Title != "First Song" || cue.Artist != "Alpha" {
		t.Fatalf("expected first cue, got %+v", cue)
	}
}

func TestExtractCaseInsensitiveSeparator(t *testing.T) {
	cue := Extract("🎵 Happy BY Pharrell Williams")
	if cue == nil {
		t.Fatal("expected a music cue")
	}
	if cue.Artist != "Pharrell Williams" {
		t.Fatalf("unexpected artist: %q", cue.Artist)
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "🎵 Happy by Pharrell Williams - this will cheer you up!"
	first := Extract(text)
	second := Extract(text)
	if first == nil || second == nil || *first != *second {
		t.Fatalf("extraction not stable: %+v vs %+v", first, second)
	}
}

func TestSearchURL(t *testing.T) {
	cue := Cue{Title: "Happy", Artist: "Pharrell Williams", SearchQuery: "Happy%20Pharrell%20Williams"}
	want := "https://www.youtube.com/results?search_query=Happy%20Pharrell%20Williams"
	if got := cue.SearchURL(); got != want {
		t.Fatalf("SearchURL() = %q, want %q", got, want)
	}
}
