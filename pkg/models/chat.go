package models

// ChatRole identifies the author of a transcript entry.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// MaxChatMessageLength bounds a single transcript entry.
const MaxChatMessageLength = 2000

// ChatMessage is one entry in a session transcript. Transcripts are
// append-only within a session and discarded with it.
type ChatMessage struct {
	Role    ChatRole `json:"role"    validate:"required,oneof=user assistant"`
	Content string   `json:"content" validate:"required,max=2000"`
}
