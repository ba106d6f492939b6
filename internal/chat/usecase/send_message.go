package usecase

import (
	"context"
	"strings"
	"time"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/model"
	"chat-session-manager/pkg/askapi"
	"chat-session-manager/pkg/textfmt"
)

// SendMessage sends one user message to the remote service with the
// current context window attached.
//
// The user turn is appended before the network call so an interrupted
// send still reflects attempted state, and rolled back if the send
// ultimately fails: after any failure the history equals its pre-call
// state. The assistant turn stores the raw answer; formatting is a
// presentation-time transform.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	token, err := uc.ensureValidCredential(ctx)
	if err != nil {
		return chat.SendOutput{}, err
	}

	prior := len(uc.history)
	uc.history = append(uc.history, model.Turn{
		Role:      model.RoleUser,
		Content:   input.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	// The outbound window excludes the just-appended turn: it travels
	// as the current question, but still counts toward context
	// eligibility.
	req := askapi.AskRequest{
		Question:            input.Message,
		SessionID:           uc.sessionID,
		ConversationHistory: wireTurns(uc.history[:prior]),
		MaintainContext:     prior+1 > 1,
	}

	resp, err := uc.api.Ask(ctx, token, req)
	if err != nil {
		uc.rollbackUserTurn()
		uc.l.Errorf(ctx, "chat usecase: send failed, history rolled back: %v", err)
		return chat.SendOutput{}, err
	}

	uc.history = append(uc.history, model.Turn{
		Role:      model.RoleAssistant,
		Content:   resp.Answer,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	uc.trimHistory()

	return chat.SendOutput{
		Answer:       textfmt.Format(resp.Answer),
		SessionID:    uc.sessionID,
		MessageCount: len(uc.history),
	}, nil
}

// rollbackUserTurn removes the most recent turn if and only if it is a
// user turn still at the tail, restoring the pre-send invariants.
func (uc *implUseCase) rollbackUserTurn() {
	if n := len(uc.history); n > 0 && uc.history[n-1].Role == model.RoleUser {
		uc.history = uc.history[:n-1]
	}
}

// trimHistory enforces the window bound, discarding oldest turns
// first.
func (uc *implUseCase) trimHistory() {
	if len(uc.history) > uc.maxHistory {
		trimmed := make([]model.Turn, uc.maxHistory)
		copy(trimmed, uc.history[len(uc.history)-uc.maxHistory:])
		uc.history = trimmed
	}
}

func wireTurns(turns []model.Turn) []askapi.Turn {
	wire := make([]askapi.Turn, len(turns))
	for i, t := range turns {
		wire[i] = askapi.Turn{
			Role:      string(t.Role),
			Content:   t.Content,
			Timestamp: t.Timestamp,
		}
	}
	return wire
}
