package usecase

import (
	"context"

	"github.com/fadilmartias/interview-coach/internal/dto"
	"github.com/fadilmartias/interview-coach/internal/model"
)

// ChatSession is the per-channel context of one live interview. It caches the
// interview id, the last generated-but-unanswered question, and the turn
// count; the interview row itself is re-fetched at the start of every event
// so status checks never act on stale state.
//
// Each event returns the single outbound frame to write, or nil when the
// event completes silently. Events never overlap on one channel: the
// transport handles a frame to completion before reading the next.
type ChatSession struct {
	uc              *InterviewUsecase
	interviewID     string
	pendingQuestion string
	turns           int
}

func (uc *InterviewUsecase) NewChatSession() *ChatSession {
	return &ChatSession{uc: uc}
}

// StartInterview resets any previous run's recorded pairs and asks the
// backend for the opening question. Status stays RESUME_UPLOADED until the
// turn limit is reached.
func (s *ChatSession) StartInterview(ctx context.Context, interviewID string) any {
	interview, err := s.uc.interviewRepo.FindByID(interviewID)
	if interviewID == "" || err != nil {
		return dto.ChatNotice{Type: "error", Message: "Invalid question ID"}
	}
	if interview.Status != model.StatusResumeUploaded {
		return dto.ChatNotice{Type: "error", Message: "Resume not uploaded yet"}
	}

	// history reset: at most one run of pairs exists per interview
	if err := s.uc.questionRepo.DeleteByInterviewID(interviewID); err != nil {
		return dto.ChatNotice{Type: "error", Message: "Could not reset interview history"}
	}

	s.interviewID = interviewID
	s.turns = 0

	question := s.uc.complete(ctx, nextQuestionPrompt(interview.ResumeText, nil))
	s.pendingQuestion = question
	return dto.ChatContent{Type: "message", Content: question}
}

// Message records the answered pair, then either closes the interview once
// the turn limit is reached or generates the next question.
func (s *ChatSession) Message(ctx context.Context, interviewID, question, answer string) any {
	if interviewID == "" {
		return dto.ChatNotice{Type: "error", Message: "Invalid question ID"}
	}
	interview, err := s.uc.interviewRepo.FindByID(interviewID)
	if err != nil {
		return dto.ChatNotice{Type: "error", Message: "Invalid question ID"}
	}

	// clients echo the question they are answering; fall back to the one
	// this channel generated last if the echo is missing
	if question == "" {
		question = s.pendingQuestion
	}

	pair := &model.Question{
		InterviewID: interview.ID,
		Question:    question,
		Answer:      answer,
	}
	if err := s.uc.questionRepo.Create(pair); err != nil {
		return dto.ChatNotice{Type: "error", Message: "Could not record answer"}
	}
	s.pendingQuestion = ""

	history, err := s.uc.questionRepo.FindAllByInterviewID(interviewID)
	if err != nil {
		return dto.ChatNotice{Type: "error", Message: "Could not load interview history"}
	}
	s.turns = len(history)

	// >= instead of == so a duplicate event past the boundary still closes
	if s.turns >= s.uc.turnLimit {
		interview.Status = model.StatusInterviewDone
		if err := s.uc.interviewRepo.Save(interview); err != nil {
			return dto.ChatNotice{Type: "error", Message: "Could not complete interview"}
		}
		return dto.ChatNotice{Type: "end_interview", Message: "Interview is completed"}
	}

	next := s.uc.complete(ctx, nextQuestionPrompt(interview.ResumeText, history))
	s.pendingQuestion = next
	return dto.ChatContent{Type: "message", Content: next}
}

// EndInterview is caller-initiated early termination: the status moves to
// CHATBOT_INTERVIEW_DONE and nothing is sent back on success.
func (s *ChatSession) EndInterview(ctx context.Context, interviewID string) any {
	interview, err := s.uc.interviewRepo.FindByID(interviewID)
	if err != nil {
		return dto.ChatNotice{Type: "error", Message: "Invalid question ID"}
	}
	interview.Status = model.StatusInterviewDone
	if err := s.uc.interviewRepo.Save(interview); err != nil {
		return dto.ChatNotice{Type: "error", Message: "Could not complete interview"}
	}
	return nil
}

// Feedback may be requested at any stage and works over whatever history
// exists, including none.
func (s *ChatSession) Feedback(ctx context.Context, interviewID string) any {
	if interviewID == "" {
		return dto.ChatNotice{Type: "error", Message: "Invalid question ID"}
	}
	history, err := s.uc.questionRepo.FindAllByInterviewID(interviewID)
	if err != nil {
		return dto.ChatNotice{Type: "error", Message: "Could not load interview history"}
	}
	text := s.uc.complete(ctx, feedbackPrompt(history))
	return dto.ChatContent{Type: "feedback", Content: text}
}
