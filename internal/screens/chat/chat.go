// Package chat implements the free-form tutor chat screen.
package chat

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/mathgeniusvn/mathgenius/internal/problem"
	"github.com/mathgeniusvn/mathgenius/internal/screen"
	"github.com/mathgeniusvn/mathgenius/internal/tutor"
	"github.com/mathgeniusvn/mathgenius/internal/ui/components"
	"github.com/mathgeniusvn/mathgenius/internal/ui/layout"
)

// replyMsg delivers the tutor's answer to a question.
type replyMsg struct {
	text string
}

// ChatScreen shows the running transcript with an input line at the
// bottom. While a reply is pending the input stays visible but sending
// is disabled.
type ChatScreen struct {
	tutor      *tutor.Tutor
	transcript *tutor.Transcript
	input      components.TextInput

	waiting bool

	// scroll is the number of lines hidden below the visible window;
	// 0 keeps the view pinned to the latest message.
	scroll int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen with a fresh transcript.
func New(t *tutor.Tutor) *ChatScreen {
	return &ChatScreen{
		tutor:      t,
		transcript: tutor.NewTranscript(),
		input:      components.NewTextInput("Nhập câu hỏi...", 200),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Gia sư AI"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Gửi"},
		{Key: "PgUp/PgDn", Description: "Cuộn"},
		{Key: "Esc", Description: "Quay lại"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		c.transcript.Append(tutor.NewMessage(tutor.RoleModel, msg.text))
		c.scroll = 0
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return c.send()
		case "pgup":
			c.scroll += 5
			return c, nil
		case "pgdown":
			c.scroll -= 5
			if c.scroll < 0 {
				c.scroll = 0
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send appends the question and asks the tutor. Blank input and
// in-flight replies are both no-ops.
func (c *ChatScreen) send() (screen.Screen, tea.Cmd) {
	if c.waiting {
		return c, nil
	}
	question := c.input.Value()
	if !problem.Submittable(question) {
		return c, nil
	}

	// Snapshot the history before appending: the question goes into the
	// prompt as the trailing turn, not as replayed history.
	history := c.transcript.Messages()
	tut := c.tutor

	c.transcript.Append(tutor.NewMessage(tutor.RoleUser, question))
	c.input = components.NewTextInput("Nhập câu hỏi...", 200)
	c.waiting = true
	c.scroll = 0

	return c, func() tea.Msg {
		return replyMsg{text: tut.Reply(context.Background(), history, question)}
	}
}
