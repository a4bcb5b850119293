package emotion

import (
	"regexp"
	"strings"
)

// Label is one of the five mood labels driving avatar rendering and voice tone.
type Label string

const (
	Happy      Label = "happy"
	Calm       Label = "calm"
	Excited    Label = "excited"
	Thoughtful Label = "thoughtful"
	Sad        Label = "sad"
)

// Default is used whenever no stronger signal is available.
const Default = Calm

// lexicons are checked in order; the first matching group wins, so an excited
// keyword outranks a sad one in the same sentence.
var lexicons = []struct {
	label   Label
	pattern *regexp.Regexp
}{
	{Excited, regexp.MustCompile(`(?i)yay|wow|amazing|awesome|fantastic|great|excited|wonderful|love|happy`)},
	{Sad, regexp.MustCompile(`(?i)sad|sorry|worried|concerned|unfortunately|difficult|hard|challenging`)},
	{Thoughtful, regexp.MustCompile(`(?i)think|consider|wonder|interesting|perhaps|maybe|question|curious`)},
}

// Classify maps free text to an emotion label. Pure and deterministic; text
// with no lexicon hit falls through to calm.
func Classify(text string) Label {
	for _, lexicon := range lexicons {
		if lexicon.pattern.MatchString(text) {
			return lexicon.label
		}
	}
	return Calm
}

// Parse validates a wire-level emotion string. Unrecognized values report
// ok=false so callers can fall back to the default.
func Parse(value string) (Label, bool) {
	switch Label(strings.ToLower(strings.TrimSpace(value))) {
	case Happy:
		return Happy, true
	case Calm:
		return Calm, true
	case Excited:
		return Excited, true
	case Thoughtful:
		return Thoughtful, true
	case Sad:
		return Sad, true
	default:
		return Default, false
	}
}
