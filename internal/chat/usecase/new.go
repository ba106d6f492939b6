package usecase

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/model"
	"chat-session-manager/pkg/askapi"
	"chat-session-manager/pkg/authapi"
	pkgLog "chat-session-manager/pkg/log"
)

// DefaultMaxHistory is the conversation window bound when the config
// does not set one.
const DefaultMaxHistory = 10

// Config carries the session manager's tunables.
type Config struct {
	// Fallback is the designated identity used to re-acquire a
	// credential whenever verification fails.
	Fallback authapi.Credentials

	// MaxHistory bounds the conversation window; oldest turns are
	// discarded first. Zero means DefaultMaxHistory.
	MaxHistory int
}

type implUseCase struct {
	l        pkgLog.Logger
	provider chat.CredentialProvider
	api      askapi.IAskAPI
	fallback authapi.Credentials

	maxHistory int

	// mu serializes sends: append -> request -> commit/rollback must
	// be atomic with respect to other sends on the same session.
	mu        sync.Mutex
	sessionID string
	history   []model.Turn
	cred      *oauth2.Token
}

// New creates a new chat UseCase instance with a fresh session.
func New(l pkgLog.Logger, provider chat.CredentialProvider, api askapi.IAskAPI, cfg Config) *implUseCase {
	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}

	return &implUseCase{
		l:          l,
		provider:   provider,
		api:        api,
		fallback:   cfg.Fallback,
		maxHistory: maxHistory,
		sessionID:  uuid.NewString(),
	}
}
