package handler

import (
	"context"
	"log"

	"github.com/fadilmartias/interview-coach/internal/dto"
	"github.com/fadilmartias/interview-coach/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ChatHandler struct {
	uc *usecase.InterviewUsecase
}

func NewChatHandler(uc *usecase.InterviewUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/chat", websocket.New(h.Chat))
}

// Chat runs one interview's live session. Frames are handled strictly in
// order, one to completion before the next is read; the loop ends on
// disconnect or an unreadable frame.
func (h *ChatHandler) Chat(conn *websocket.Conn) {
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("chat session panic: %v", r)
		}
	}()

	ctx := context.Background()
	session := h.uc.NewChatSession()

	for {
		var req dto.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			log.Println("chat connection closed:", err)
			return
		}

		var out any
		switch req.Type {
		case "start_interview":
			out = session.StartInterview(ctx, req.InterviewID)
		case "message":
			out = session.Message(ctx, req.InterviewID, req.Question, req.Content)
		case "end_interview":
			out = session.EndInterview(ctx, req.InterviewID)
		case "feedback":
			out = session.Feedback(ctx, req.InterviewID)
		default:
			// unknown frame types are dropped without a reply
			continue
		}

		if out == nil {
			continue
		}
		if err := conn.WriteJSON(out); err != nil {
			log.Println("chat write failed:", err)
			return
		}
	}
}
