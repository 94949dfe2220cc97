package problem

import "testing"

func TestEvaluate_ShortAnswer_Whitespace(t *testing.T) {
	p := &Problem{Kind: KindShortAnswer, CorrectAnswer: "5"}

	tests := []struct {
		input string
		want  bool
	}{
		{"5", true},
		{" 5 ", true},
		{"5 ", true},
		{"6", false},
	}

	for _, tc := range tests {
		if got := Evaluate(p, tc.input); got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestEvaluate_BlankIsNotASubmission(t *testing.T) {
	p := &Problem{Kind: KindShortAnswer, CorrectAnswer: "5"}

	for _, input := range []string{"", "   ", "\t"} {
		if Submittable(input) {
			t.Errorf("Submittable(%q) = true, want false", input)
		}
		if Evaluate(p, input) {
			t.Errorf("Evaluate(%q) = true, want false", input)
		}
	}
}

func TestEvaluate_CaseInsensitive_NoDiacriticFolding(t *testing.T) {
	p := &Problem{Kind: KindShortAnswer, CorrectAnswer: "Hà Nội"}

	if !Evaluate(p, "hà nội") {
		t.Error("expected case-insensitive match for diacritic text")
	}
	if Evaluate(p, "Ha Noi") {
		t.Error("expected no diacritic folding: 'Ha Noi' must not match 'Hà Nội'")
	}
}

func TestEvaluate_MultipleChoice_PrefixRule(t *testing.T) {
	p := &Problem{
		Kind:          KindMultipleChoice,
		Options:       []string{"A. 5", "B. 6", "C. 7", "D. 8"},
		CorrectAnswer: "A. 5",
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"a", true},     // option letter
		{"A. 5", true},  // full text
		{"a. 5", true},  // case-folded full text
		{"B", false},    // wrong letter
		{"B. 6", false}, // wrong option
	}

	for _, tc := range tests {
		if got := Evaluate(p, tc.input); got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

// The prefix rule accepts ANY literal prefix of the correct answer, not
// just a single leading letter. This is documented behavior; the test
// guards against anyone "fixing" it.
func TestEvaluate_MultipleChoice_AnyPrefixAccepted(t *testing.T) {
	p := &Problem{Kind: KindMultipleChoice, CorrectAnswer: "ab"}

	if !Evaluate(p, "a") {
		t.Error(`expected "a" to be accepted as a prefix of "ab"`)
	}
	if Evaluate(p, "b") {
		t.Error(`expected "b" to be rejected`)
	}
}

func TestEvaluate_PrefixRuleIsMultipleChoiceOnly(t *testing.T) {
	p := &Problem{Kind: KindShortAnswer, CorrectAnswer: "ab"}

	if Evaluate(p, "a") {
		t.Error("prefix leniency must not apply to short answers")
	}
}

func TestEvaluate_NoNumericEquivalence(t *testing.T) {
	p := &Problem{Kind: KindShortAnswer, CorrectAnswer: "1/2"}

	if Evaluate(p, "0.5") {
		t.Error("comparison is purely lexical: 0.5 must not match 1/2")
	}
	if !Evaluate(p, "1/2") {
		t.Error("exact match must pass")
	}
}
