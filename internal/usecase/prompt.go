package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/interview-coach/internal/model"
)

// The prompt templates are load-bearing: downstream text analysis keys on
// this exact phrasing, so they are built by these pure functions and nowhere
// else.

func renderHistory(history []model.Question) string {
	lines := make([]string, 0, len(history))
	for _, q := range history {
		lines = append(lines, fmt.Sprintf("question: %s, answer: %s", q.Question, q.Answer))
	}
	return strings.Join(lines, "\n")
}

func nextQuestionPrompt(resumeText string, history []model.Question) string {
	return fmt.Sprintf("Resume: %s\nPrevious QnA: [%s]\nNext question? just keep the question short in 3-5 lines max.",
		resumeText, renderHistory(history))
}

func feedbackPrompt(history []model.Question) string {
	return fmt.Sprintf("Previous QnA: [%s]\n based on this provide feedback for the candidate. Just keep the feedback short in 3-5 lines max.",
		renderHistory(history))
}
