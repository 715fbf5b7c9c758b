package model

import "time"

// Message roles. The log only ever contains these two.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chat stores metadata about a conversation. The live message log is
// held separately and looked up by chat id.
type Chat struct {
	ID           string    `json:"chatId"`
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	HeadCommitID *string   `json:"headCommitId,omitempty"` // Weak reference to the commit the log was last aligned with.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Message is a single turn in a chat. Messages are immutable once
// appended; the log is only ever extended or replaced wholesale.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Commit is an immutable named snapshot of a chat's message log at a
// point in time. Messages is a deep copy taken at commit time; no
// operation mutates or deletes a commit after creation.
type Commit struct {
	ID        string    `json:"commitId"`
	ChatID    string    `json:"chatId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"timestamp"`
	Messages  []Message `json:"messages,omitempty"`
}

// ChatSummary is the listing projection of a chat.
type ChatSummary struct {
	ChatID    string    `json:"chatId"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommitSummary is the metadata-only projection used by history
// listings. Message bodies are deliberately absent to keep listing cheap.
type CommitSummary struct {
	CommitID     string    `json:"commitId"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"timestamp"`
	MessageCount int       `json:"messageCount"`
}

// CloneMessages returns a structural copy of a message log. Both the
// commit and restore paths go through this so a live log and a stored
// snapshot never share backing storage.
func CloneMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
