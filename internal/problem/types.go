// Package problem generates math practice problems through the model
// provider and evaluates submitted answers.
package problem

// Kind determines which input affordance and evaluation rule applies.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindShortAnswer    Kind = "short_answer"
)

// Problem is one generated exercise. Immutable once created; discarded
// when a new problem is requested. Never persisted.
type Problem struct {
	// Question is the prompt displayed to the student. Never empty.
	Question string

	// Kind selects the answer affordance: pick an option or type text.
	Kind Kind

	// Options holds the candidate answers for multiple choice.
	// Ignored for short answer.
	Options []string

	// CorrectAnswer is the canonical answer. For multiple choice it is
	// typically the full option text including its leading letter label.
	// Empty only on the fallback problem.
	CorrectAnswer string

	// Hint is a short nudge shown on demand before submission.
	Hint string
}
