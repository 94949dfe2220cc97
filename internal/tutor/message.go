// Package tutor implements the free-form chat with the math tutor
// persona. The transcript is append-only and lives only for the session.
package tutor

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who wrote a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single turn in the chat transcript.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time
}

// NewMessage creates a message with a fresh ID and the current time.
func NewMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Greeting is the model turn every new transcript starts with.
const Greeting = "Chào bạn! Mình là trợ lý AI của Thầy Cường. Bạn có câu hỏi toán học nào cần giải đáp không?"

// Transcript is the ordered chat history. Messages are only ever
// appended; nothing is edited or removed.
type Transcript struct {
	messages []Message
}

// NewTranscript returns a transcript seeded with the tutor's greeting.
func NewTranscript() *Transcript {
	t := &Transcript{}
	t.Append(NewMessage(RoleModel, Greeting))
	return t
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(m Message) {
	t.messages = append(t.messages, m)
}

// Messages returns the transcript in order. The returned slice must not
// be mutated.
func (t *Transcript) Messages() []Message {
	return t.messages
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}
