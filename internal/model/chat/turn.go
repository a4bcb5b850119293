package chat

import (
	"time"

	"github.com/zoralabs/zora/backend/internal/analysis/emotion"
	"github.com/zoralabs/zora/backend/internal/analysis/music"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one exchanged message. History is append-only and chronological;
// duplicate content is legal.
type Turn struct {
	ID        string        `json:"id"`
	Role      Role          `json:"role"`
	Content   string        `json:"content"`
	Emotion   emotion.Label `json:"emotion,omitempty"`
	Music     *music.Cue    `json:"music,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}
