package speech

import "errors"

// ErrUnavailable reports that the host platform does not expose the
// capability. Callers degrade to text-only interaction rather than failing
// the conversation.
var ErrUnavailable = errors.New("speech capability unavailable")

// Event reports a synthesis lifecycle transition; the speaking indicator is
// driven entirely by these.
type Event int

const (
	EventStart Event = iota
	EventEnd
	EventError
)

// Synthesizer speaks assistant replies with per-emotion voice parameters.
// Speak must not block on playback; lifecycle is reported through onEvent.
// Stop cancels any in-progress utterance immediately.
type Synthesizer interface {
	Speak(text string, profile VoiceProfile, onEvent func(Event)) error
	Stop()
}

// Recognizer captures user speech for a language tag and delivers final
// transcripts asynchronously. Stop cancels listening immediately.
type Recognizer interface {
	Start(language string, onTranscript func(text string)) error
	Stop()
}

// NoopSynthesizer satisfies Synthesizer for headless clients. It still emits
// start/end so speaking indicators resolve.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Speak(_ string, _ VoiceProfile, onEvent func(Event)) error {
	if onEvent != nil {
		onEvent(EventStart)
		onEvent(EventEnd)
	}
	return nil
}

func (NoopSynthesizer) Stop() {}
