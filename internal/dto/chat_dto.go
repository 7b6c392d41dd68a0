package dto

// ChatRequest is one inbound frame on the live interview channel. Fields
// beyond Type are filled depending on the event: message carries the echoed
// question plus the candidate's answer in Content, the rest only carry the
// interview id.
type ChatRequest struct {
	Type        string `json:"type"`
	InterviewID string `json:"interview_id"`
	Question    string `json:"question"`
	Content     string `json:"content"`
}

// ChatContent is the outbound frame for generated text (message, feedback).
type ChatContent struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ChatNotice is the outbound frame for errors and end_interview.
type ChatNotice struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
