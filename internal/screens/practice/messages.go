package practice

import "github.com/mathgeniusvn/mathgenius/internal/problem"

// problemReadyMsg delivers a generated problem. genID ties the result to
// the request that started it; stale results are dropped.
type problemReadyMsg struct {
	genID   int
	problem *problem.Problem
}

// explanationReadyMsg delivers the solution explanation for the problem
// identified by genID.
type explanationReadyMsg struct {
	genID int
	text  string
}

// AnsweredMsg is emitted after each evaluated submission so the app can
// keep the session tally.
type AnsweredMsg struct {
	Correct bool
}
