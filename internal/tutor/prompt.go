package tutor

import (
	"fmt"
	"strings"
)

const preamble = "Bạn là gia sư toán thân thiện. Hãy giúp học sinh giải đáp thắc mắc.\n\n"

// buildPrompt flattens the transcript and the new question into a single
// prompt. Prior turns are replayed in order, labelled by speaker, with
// the new question last and a trailing cue for the tutor's reply.
//
// Only the most recent window turns of history are replayed; maxTurns <= 0
// replays everything.
func buildPrompt(history []Message, question string, maxTurns int) string {
	if maxTurns > 0 && len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}

	var b strings.Builder
	b.WriteString(preamble)

	for _, m := range history {
		switch m.Role {
		case RoleUser:
			fmt.Fprintf(&b, "Học sinh: %s\n", m.Text)
		case RoleModel:
			fmt.Fprintf(&b, "Gia sư: %s\n", m.Text)
		}
	}

	fmt.Fprintf(&b, "Học sinh: %s\nGia sư:", question)
	return b.String()
}
