package usecase

import (
	"testing"

	"github.com/fadilmartias/interview-coach/internal/model"
)

func TestNextQuestionPromptEmptyHistory(t *testing.T) {
	got := nextQuestionPrompt("Jane Doe, 5y backend", nil)
	want := "Resume: Jane Doe, 5y backend\nPrevious QnA: []\nNext question? just keep the question short in 3-5 lines max."
	if got != want {
		t.Fatalf("prompt mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestNextQuestionPromptWithHistory(t *testing.T) {
	history := []model.Question{
		{Question: "Tell me about your stack", Answer: "Used Go and Postgres"},
		{Question: "Biggest outage?", Answer: "A bad migration"},
	}
	got := nextQuestionPrompt("Jane Doe", history)
	want := "Resume: Jane Doe\nPrevious QnA: [question: Tell me about your stack, answer: Used Go and Postgres\nquestion: Biggest outage?, answer: A bad migration]\nNext question? just keep the question short in 3-5 lines max."
	if got != want {
		t.Fatalf("prompt mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestFeedbackPrompt(t *testing.T) {
	history := []model.Question{
		{Question: "Q1", Answer: "A1"},
	}
	got := feedbackPrompt(history)
	want := "Previous QnA: [question: Q1, answer: A1]\n based on this provide feedback for the candidate. Just keep the feedback short in 3-5 lines max."
	if got != want {
		t.Fatalf("prompt mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestFeedbackPromptEmptyHistory(t *testing.T) {
	got := feedbackPrompt(nil)
	want := "Previous QnA: []\n based on this provide feedback for the candidate. Just keep the feedback short in 3-5 lines max."
	if got != want {
		t.Fatalf("prompt mismatch:\ngot  %q\nwant %q", got, want)
	}
}
