package httpapi

import (
	"chat-session-manager/internal/chat"
)

// --- Request DTOs ---

type sendReq struct {
	Message string `json:"message" binding:"required"`
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{Message: r.Message}
}

// --- Response DTOs ---

type sendResp struct {
	Answer       string `json:"answer"`
	SessionID    string `json:"session_id"`
	MessageCount int    `json:"message_count"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	return sendResp{
		Answer:       out.Answer,
		SessionID:    out.SessionID,
		MessageCount: out.MessageCount,
	}
}

type contextResp struct {
	SessionID    string `json:"session_id"`
	MessageCount int    `json:"message_count"`
	HasContext   bool   `json:"has_context"`
}

func (h *handler) newContextResp(info chat.ContextInfo) contextResp {
	return contextResp{
		SessionID:    info.SessionID,
		MessageCount: info.MessageCount,
		HasContext:   info.HasContext,
	}
}

type statusResp struct {
	Authenticated bool `json:"authenticated"`
}
