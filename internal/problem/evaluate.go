package problem

import "strings"

// Submittable reports whether an answer is a valid submission.
// A blank answer is rejected before evaluation: the UI stays in the
// unsubmitted state and nothing is checked.
func Submittable(answer string) bool {
	return strings.TrimSpace(answer) != ""
}

// Evaluate compares the student's answer against the problem's canonical
// answer. Both sides are trimmed and lowercased; comparison is otherwise
// literal — no diacritic folding, no numeric equivalence ("0.5" does not
// match "1/2").
//
// For multiple choice, an answer that is a prefix of the normalized
// correct answer is also accepted. This lets students type just the
// option letter ("a" for "A. 5"), at the cost of accepting any literal
// prefix of the correct text. That leniency is intentional behavior,
// kept as-is; see the evaluator tests that pin it down.
func Evaluate(p *Problem, userAnswer string) bool {
	if !Submittable(userAnswer) {
		return false
	}

	user := strings.ToLower(strings.TrimSpace(userAnswer))
	correct := strings.ToLower(strings.TrimSpace(p.CorrectAnswer))

	if user == correct {
		return true
	}
	return p.Kind == KindMultipleChoice && strings.HasPrefix(correct, user)
}
