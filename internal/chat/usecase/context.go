package usecase

import (
	"context"

	"github.com/google/uuid"

	"chat-session-manager/internal/chat"
)

// ClearContext starts a fresh conversation: the session ID is
// regenerated and the history emptied. The credential is untouched;
// session identity never changes on credential renewal, only here.
func (uc *implUseCase) ClearContext(ctx context.Context) chat.ContextInfo {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.sessionID = uuid.NewString()
	uc.history = nil

	uc.l.Infof(ctx, "chat usecase: context cleared, new session %s", uc.sessionID)
	return uc.contextInfoLocked()
}

// GetContextInfo reports the current window. Pure read.
func (uc *implUseCase) GetContextInfo(ctx context.Context) chat.ContextInfo {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.contextInfoLocked()
}

func (uc *implUseCase) contextInfoLocked() chat.ContextInfo {
	return chat.ContextInfo{
		SessionID:    uc.sessionID,
		MessageCount: len(uc.history),
		HasContext:   len(uc.history) > 0,
	}
}
