package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/interview-coach/internal/dto"
	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/fadilmartias/interview-coach/internal/repository"
	"github.com/google/uuid"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeCompletion struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompletion) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestUsecase(t *testing.T, completion *fakeCompletion) (*InterviewUsecase, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Interview{}, &model.Question{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	uc := NewInterviewUsecase(
		repository.NewInterviewRepository(db),
		repository.NewQuestionRepository(db),
		completion,
		3,
	)
	return uc, db
}

func seedUploadedInterview(t *testing.T, uc *InterviewUsecase, resumeText string) *model.Interview {
	t.Helper()
	interview, err := uc.CreateInterview()
	if err != nil {
		t.Fatalf("CreateInterview returned error: %v", err)
	}
	interview, err = uc.UploadResume(interview.ID.String(), resumeText)
	if err != nil {
		t.Fatalf("UploadResume returned error: %v", err)
	}
	return interview
}

func countQuestions(t *testing.T, db *gorm.DB, interviewID string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Question{}).Where("interview_id = ?", interviewID).Count(&n).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	return n
}

func TestStartInterviewUnknownID(t *testing.T) {
	uc, _ := newTestUsecase(t, &fakeCompletion{reply: "Q1"})
	session := uc.NewChatSession()

	out := session.StartInterview(context.Background(), "c2c7bc34-0000-0000-0000-000000000000")
	notice, ok := out.(dto.ChatNotice)
	if !ok {
		t.Fatalf("expected error notice, got %T", out)
	}
	if notice.Type != "error" || notice.Message != "Invalid question ID" {
		t.Fatalf("unexpected notice: %+v", notice)
	}
}

func TestStartInterviewBeforeResumeUpload(t *testing.T) {
	fake := &fakeCompletion{reply: "Q1"}
	uc, db := newTestUsecase(t, fake)
	interview, err := uc.CreateInterview()
	if err != nil {
		t.Fatalf("CreateInterview returned error: %v", err)
	}

	session := uc.NewChatSession()
	out := session.StartInterview(context.Background(), interview.ID.String())
	notice, ok := out.(dto.ChatNotice)
	if !ok || notice.Type != "error" || notice.Message != "Resume not uploaded yet" {
		t.Fatalf("expected resume-not-uploaded error, got %#v", out)
	}
	if len(fake.prompts) != 0 {
		t.Fatal("backend must not be called on an invalid transition")
	}
	if n := countQuestions(t, db, interview.ID.String()); n != 0 {
		t.Fatalf("expected no question records, got %d", n)
	}

	got, err := uc.GetInterview(interview.ID.String())
	if err != nil {
		t.Fatalf("GetInterview returned error: %v", err)
	}
	if got.Status != model.StatusTodo {
		t.Fatalf("status must be unchanged, got %s", got.Status)
	}
}

func TestStartInterviewResetsHistory(t *testing.T) {
	fake := &fakeCompletion{reply: "Q1"}
	uc, db := newTestUsecase(t, fake)
	interview := seedUploadedInterview(t, uc, "Jane Doe, 5y backend")

	for i := 0; i < 2; i++ {
		err := db.Create(&model.Question{
			ID:          uuid.New(),
			InterviewID: interview.ID,
			Question:    fmt.Sprintf("old Q%d", i),
			Answer:      "old A",
		}).Error
		if err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}

	session := uc.NewChatSession()
	out := session.StartInterview(context.Background(), interview.ID.String())
	content, ok := out.(dto.ChatContent)
	if !ok || content.Type != "message" || content.Content != "Q1" {
		t.Fatalf("expected first question frame, got %#v", out)
	}
	if n := countQuestions(t, db, interview.ID.String()); n != 0 {
		t.Fatalf("prior run must be deleted before the first question, got %d records", n)
	}
	if want := "Resume: Jane Doe, 5y backend\nPrevious QnA: []\nNext question? just keep the question short in 3-5 lines max."; fake.prompts[0] != want {
		t.Fatalf("opening prompt mismatch:\ngot  %q\nwant %q", fake.prompts[0], want)
	}
}

func TestThreeTurnsCompleteInterview(t *testing.T) {
	fake := &fakeCompletion{reply: "next question"}
	uc, db := newTestUsecase(t, fake)
	interview := seedUploadedInterview(t, uc, "Jane Doe, 5y backend")
	id := interview.ID.String()

	ctx := context.Background()
	session := uc.NewChatSession()

	if out := session.StartInterview(ctx, id); out.(dto.ChatContent).Type != "message" {
		t.Fatalf("unexpected start frame: %#v", out)
	}

	for turn := 1; turn <= 2; turn++ {
		out := session.Message(ctx, id, fmt.Sprintf("Q%d", turn), "Used Go and Postgres")
		content, ok := out.(dto.ChatContent)
		if !ok || content.Type != "message" {
			t.Fatalf("turn %d: expected next question frame, got %#v", turn, out)
		}
	}

	out := session.Message(ctx, id, "Q3", "Used Go and Postgres")
	notice, ok := out.(dto.ChatNotice)
	if !ok || notice.Type != "end_interview" || notice.Message != "Interview is completed" {
		t.Fatalf("third turn must close the interview, got %#v", out)
	}

	got, err := uc.GetInterview(id)
	if err != nil {
		t.Fatalf("GetInterview returned error: %v", err)
	}
	if got.Status != model.StatusInterviewDone {
		t.Fatalf("expected %s, got %s", model.StatusInterviewDone, got.Status)
	}
	if n := countQuestions(t, db, id); n != 3 {
		t.Fatalf("expected 3 recorded pairs, got %d", n)
	}

	// second turn's prompt carries the first recorded pair, in order
	if !strings.Contains(fake.prompts[1], "question: Q1, answer: Used Go and Postgres") {
		t.Fatalf("history missing from prompt: %q", fake.prompts[1])
	}
	// closing turn asks for no further question
	if len(fake.prompts) != 3 {
		t.Fatalf("expected 3 backend calls (start + 2 next questions), got %d", len(fake.prompts))
	}
}

func TestMessageUnknownInterview(t *testing.T) {
	uc, db := newTestUsecase(t, &fakeCompletion{reply: "Q"})
	session := uc.NewChatSession()

	out := session.Message(context.Background(), "c2c7bc34-0000-0000-0000-000000000000", "Q1", "A1")
	notice, ok := out.(dto.ChatNotice)
	if !ok || notice.Type != "error" {
		t.Fatalf("expected error notice, got %#v", out)
	}
	var n int64
	if err := db.Model(&model.Question{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("no pair may be recorded for an unknown interview, got %d", n)
	}
}

func TestMessageFallsBackToPendingQuestion(t *testing.T) {
	fake := &fakeCompletion{reply: "What databases have you used?"}
	uc, db := newTestUsecase(t, fake)
	interview := seedUploadedInterview(t, uc, "resume")
	id := interview.ID.String()

	ctx := context.Background()
	session := uc.NewChatSession()
	session.StartInterview(ctx, id)
	session.Message(ctx, id, "", "Postgres mostly")

	var pair model.Question
	if err := db.First(&pair, "interview_id = ?", id).Error; err != nil {
		t.Fatalf("expected recorded pair: %v", err)
	}
	if pair.Question != "What databases have you used?" {
		t.Fatalf("expected pending question to back an empty echo, got %q", pair.Question)
	}
	if pair.Answer != "Postgres mostly" {
		t.Fatalf("unexpected answer %q", pair.Answer)
	}
}

func TestEndInterviewIsSilent(t *testing.T) {
	uc, _ := newTestUsecase(t, &fakeCompletion{reply: "Q"})
	interview := seedUploadedInterview(t, uc, "resume")

	session := uc.NewChatSession()
	if out := session.EndInterview(context.Background(), interview.ID.String()); out != nil {
		t.Fatalf("successful end_interview must produce no frame, got %#v", out)
	}

	got, err := uc.GetInterview(interview.ID.String())
	if err != nil {
		t.Fatalf("GetInterview returned error: %v", err)
	}
	if got.Status != model.StatusInterviewDone {
		t.Fatalf("expected %s, got %s", model.StatusInterviewDone, got.Status)
	}
}

func TestFeedbackWithEmptyHistory(t *testing.T) {
	fake := &fakeCompletion{reply: "Solid candidate."}
	uc, _ := newTestUsecase(t, fake)
	interview := seedUploadedInterview(t, uc, "resume")

	session := uc.NewChatSession()
	out := session.Feedback(context.Background(), interview.ID.String())
	content, ok := out.(dto.ChatContent)
	if !ok || content.Type != "feedback" || content.Content != "Solid candidate." {
		t.Fatalf("expected feedback frame, got %#v", out)
	}
	if want := "Previous QnA: []\n based on this provide feedback for the candidate. Just keep the feedback short in 3-5 lines max."; fake.prompts[0] != want {
		t.Fatalf("feedback prompt mismatch:\ngot  %q\nwant %q", fake.prompts[0], want)
	}
}

func TestCompletionFailureYieldsEmptyContent(t *testing.T) {
	fake := &fakeCompletion{err: fmt.Errorf("backend down")}
	uc, _ := newTestUsecase(t, fake)
	interview := seedUploadedInterview(t, uc, "resume")
	id := interview.ID.String()

	session := uc.NewChatSession()
	out := session.StartInterview(context.Background(), id)
	content, ok := out.(dto.ChatContent)
	if !ok || content.Type != "message" || content.Content != "" {
		t.Fatalf("backend failure must degrade to an empty question, got %#v", out)
	}

	out = session.Feedback(context.Background(), id)
	content, ok = out.(dto.ChatContent)
	if !ok || content.Type != "feedback" || content.Content != "" {
		t.Fatalf("backend failure must degrade to empty feedback, got %#v", out)
	}
}

func TestUploadAfterCompletionKeepsStatus(t *testing.T) {
	uc, _ := newTestUsecase(t, &fakeCompletion{reply: "Q"})
	interview := seedUploadedInterview(t, uc, "v1")

	session := uc.NewChatSession()
	session.EndInterview(context.Background(), interview.ID.String())

	updated, err := uc.UploadResume(interview.ID.String(), "v2")
	if err != nil {
		t.Fatalf("UploadResume returned error: %v", err)
	}
	if updated.Status != model.StatusInterviewDone {
		t.Fatalf("status regressed to %s", updated.Status)
	}
	if updated.ResumeText != "v2" {
		t.Fatalf("resume text must be overwritten wholesale, got %q", updated.ResumeText)
	}
}
