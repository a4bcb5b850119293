package chat

import (
	"github.com/zoralabs/zora/backend/internal/analysis/emotion"
	"github.com/zoralabs/zora/backend/internal/analysis/music"
)

// Request is the relay endpoint's wire request. Emotion and Language are
// optional; unknown values fall back to calm and English.
type Request struct {
	Message  string `json:"message"`
	Emotion  string `json:"emotion,omitempty"`
	Language string `json:"language,omitempty"`
}

// Response is the relay endpoint's wire response. Music is null when the
// reply carries no suggestion.
type Response struct {
	Message string        `json:"message"`
	Emotion emotion.Label `json:"emotion"`
	Music   *music.Cue    `json:"music"`
}
