package httpapi

import (
	"github.com/gin-gonic/gin"

	"chat-session-manager/internal/chat"
	"chat-session-manager/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	GetContext(c *gin.Context)
	ClearContext(c *gin.Context)
	AuthStatus(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	provider chat.CredentialProvider
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, provider chat.CredentialProvider) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		provider: provider,
	}
}
