package music

import (
	"net/url"
	"regexp"
	"strings"
)

// Cue is a structured song suggestion parsed from an assistant reply.
type Cue struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	SearchQuery string `json:"searchQuery"`
}

// SearchURL builds the informational playback link for the cue.
func (c Cue) SearchURL() string {
	return "https://www.youtube.com/results?search_query=" + c.SearchQuery
}

// Replies announce songs as "🎵 <title> by <artist>" followed by a short
// remark. The artist ends at the first period, a " - " remark separator, or
// the end of the text; only the first cue in a reply is used.
var cuePattern = regexp.MustCompile(`(?i)🎵\s*(.+?)\s+by\s+(.+?)(?:\.|\s+-\s+|$)`)

// Extract scans reply text for a music suggestion. Returns nil when the reply
// carries none.
func Extract(text string) *Cue {
	match := cuePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	title := strings.TrimSpace(match[1])
	artist := strings.TrimSpace(match[2])

	return &Cue{
		Title:       title,
		Artist:      artist,
		SearchQuery: encodeComponent(title + " " + artist),
	}
}

// encodeComponent percent-encodes a query the way browsers do, with %20 for
// spaces rather than "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
