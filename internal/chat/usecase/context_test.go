package usecase_test

import (
	"context"
	"testing"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/usecase"
	"chat-session-manager/pkg/askapi"
)

func TestContext(t *testing.T) {
	t.Run("Fresh Session Has No Context", func(t *testing.T) {
		rec := newAskRecorder("answer")
		defer rec.server.Close()

		uc := usecase.New(&mockLogger{}, &mockProvider{}, askapi.NewClient(rec.server.URL), usecase.Config{})
		info := uc.GetContextInfo(context.Background())
		if info.SessionID == "" {
			t.Errorf("expected a session ID at construction")
		}
		if info.MessageCount != 0 || info.HasContext {
			t.Errorf("expected empty context, got %+v", info)
		}
	})

	t.Run("Clear Regenerates Session And Empties History", func(t *testing.T) {
		rec := newAskRecorder("answer")
		defer rec.server.Close()

		uc := usecase.New(&mockLogger{}, &mockProvider{}, askapi.NewClient(rec.server.URL), usecase.Config{})

		if _, err := uc.SendMessage(context.Background(), chat.SendInput{Message: "hello"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := uc.GetContextInfo(context.Background())
		if !before.HasContext {
			t.Fatalf("expected context after a send, got %+v", before)
		}

		cleared := uc.ClearContext(context.Background())
		if cleared.SessionID == before.SessionID {
			t.Errorf("expected a new session ID after clear")
		}
		if cleared.MessageCount != 0 || cleared.HasContext {
			t.Errorf("expected empty context after clear, got %+v", cleared)
		}

		// A subsequent send starts a fresh window under the new session.
		if _, err := uc.SendMessage(context.Background(), chat.SendInput{Message: "fresh start"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sent := rec.last()
		if sent.SessionID != cleared.SessionID {
			t.Errorf("send must use the regenerated session ID")
		}
		if sent.MaintainContext || len(sent.ConversationHistory) != 0 {
			t.Errorf("expected a fresh window, got %+v", sent)
		}
	})

	t.Run("Clear Is Idempotent On Empty Session", func(t *testing.T) {
		rec := newAskRecorder("answer")
		defer rec.server.Close()

		uc := usecase.New(&mockLogger{}, &mockProvider{}, askapi.NewClient(rec.server.URL), usecase.Config{})

		first := uc.ClearContext(context.Background())
		second := uc.ClearContext(context.Background())
		if first.MessageCount != 0 || second.MessageCount != 0 {
			t.Errorf("clear must leave an empty history")
		}
		if first.SessionID == second.SessionID {
			t.Errorf("each clear regenerates the session ID")
		}
	})
}
