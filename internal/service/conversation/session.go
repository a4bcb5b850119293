package conversation

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zoralabs/zora/backend/internal/analysis/emotion"
	"github.com/zoralabs/zora/backend/internal/model/chat"
	"github.com/zoralabs/zora/backend/internal/service/speech"
)

var (
	// ErrEmptyMessage rejects blank input before any state changes.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrRequestInFlight is the single-flight guard: a send while awaiting a
	// reply is ignored rather than queued.
	ErrRequestInFlight = errors.New("a relay request is already in flight")
)

// FallbackTurn is shown when the relay fails, so the session never stays
// stuck awaiting a reply.
const FallbackTurn = "I'm having trouble hearing you right now. Can you try again?"

// Relay abstracts how the session reaches the relay service, in-process or
// over HTTP.
type Relay interface {
	Relay(ctx context.Context, req chat.Request) (chat.Response, error)
}

// Session holds one dialogue: ordered turns, the current emotion, and the
// in-flight request guard. Lifetime is the client session; nothing persists.
type Session struct {
	relay    Relay
	synth    speech.Synthesizer
	language string

	mu       sync.Mutex
	turns    []chat.Turn
	current  emotion.Label
	awaiting bool
	speaking bool
}

// Option customizes a new session.
type Option func(*Session)

// WithSynthesizer attaches a speech synthesizer; without one replies stay
// text-only.
func WithSynthesizer(s speech.Synthesizer) Option {
	return func(sess *Session) { sess.synth = s }
}

// WithLanguage sets the language tag sent with every relay request.
func WithLanguage(tag string) Option {
	return func(sess *Session) { sess.language = tag }
}

// NewSession creates an idle session with the default calm emotion.
func NewSession(relay Relay, opts ...Option) *Session {
	sess := &Session{
		relay:    relay,
		language: "en-US",
		current:  emotion.Default,
	}
	for _, opt := range opts {
		opt(sess)
	}
	return sess
}

// Send relays one utterance and appends both sides of the exchange to the
// history. On relay failure a fixed fallback assistant turn is appended and
// the session still returns to idle; the error reports what went wrong.
func (s *Session) Send(ctx context.Context, text string, detected emotion.Label) (chat.Turn, error) {
	message := strings.TrimSpace(text)
	if message == "" {
		return chat.Turn{}, ErrEmptyMessage
	}
	if detected == "" {
		detected = emotion.Default
	}

	s.mu.Lock()
	if s.awaiting {
		s.mu.Unlock()
		return chat.Turn{}, ErrRequestInFlight
	}
	s.awaiting = true
	s.turns = append(s.turns, newTurn(chat.RoleUser, message, detected))
	s.current = detected
	language := s.language
	s.mu.Unlock()

	resp, err := s.relay.Relay(ctx, chat.Request{
		Message:  message,
		Emotion:  string(detected),
		Language: language,
	})

	s.mu.Lock()
	s.awaiting = false

	if err != nil {
		turn := newTurn(chat.RoleAssistant, FallbackTurn, emotion.Calm)
		s.turns = append(s.turns, turn)
		s.mu.Unlock()
		return turn, err
	}

	turn := newTurn(chat.RoleAssistant, resp.Message, resp.Emotion)
	turn.Music = resp.Music
	s.turns = append(s.turns, turn)
	s.current = resp.Emotion
	s.mu.Unlock()

	s.speak(resp.Message, resp.Emotion)
	return turn, nil
}

// Listen starts the recognizer and forwards each final transcript through
// Send. Send errors (busy guard, relay failures) are logged, not fatal: the
// fallback turn already keeps the session consistent.
func (s *Session) Listen(ctx context.Context, rec speech.Recognizer) error {
	if rec == nil {
		return speech.ErrUnavailable
	}
	return rec.Start(s.language, func(transcript string) {
		if _, err := s.Send(ctx, transcript, s.CurrentEmotion()); err != nil {
			log.Printf("[conversation] transcript send failed: %v", err)
		}
	})
}

// History returns a copy of the exchanged turns in chronological order.
func (s *Session) History() []chat.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]chat.Turn, len(s.turns))
	copy(copied, s.turns)
	return copied
}

// CurrentEmotion reports the emotion driving avatar and voice right now.
func (s *Session) CurrentEmotion() emotion.Label {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Busy reports whether a relay request is outstanding.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting
}

// Speaking reports whether the synthesizer is mid-utterance.
func (s *Session) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

// speak triggers synthesis with the new emotion's voice preset. A missing or
// unavailable synthesizer degrades to text-only output. Must be called
// without s.mu held; the event callback takes the lock.
func (s *Session) speak(text string, mood emotion.Label) {
	if s.synth == nil {
		return
	}

	err := s.synth.Speak(text, speech.ProfileFor(mood), func(event speech.Event) {
		s.mu.Lock()
		s.speaking = event == speech.EventStart
		s.mu.Unlock()
	})
	if err != nil && !errors.Is(err, speech.ErrUnavailable) {
		log.Printf("[conversation] speech synthesis failed: %v", err)
	}
}

func newTurn(role chat.Role, content string, mood emotion.Label) chat.Turn {
	return chat.Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Emotion:   mood,
		CreatedAt: time.Now().UTC(),
	}
}
