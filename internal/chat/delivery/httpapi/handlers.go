package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chat-session-manager/internal/chat"
	"chat-session-manager/pkg/response"
)

// SendMessage handles POST /api/chat/messages: it forwards the message
// to the remote service with the current context window attached.
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// GetContext handles GET /api/chat/context.
func (h *handler) GetContext(c *gin.Context) {
	info := h.uc.GetContextInfo(c.Request.Context())
	response.OK(c, h.newContextResp(info))
}

// ClearContext handles DELETE /api/chat/context: the session ID is
// regenerated and the history emptied.
func (h *handler) ClearContext(c *gin.Context) {
	info := h.uc.ClearContext(c.Request.Context())
	response.OK(c, h.newContextResp(info))
}

// AuthStatus handles GET /api/auth/status. The stored credential is
// verified against the remote service, not just checked for presence.
func (h *handler) AuthStatus(c *gin.Context) {
	ctx := c.Request.Context()

	token := h.provider.GetStored()
	if token == nil {
		response.OK(c, statusResp{Authenticated: false})
		return
	}

	ok, err := h.provider.Verify(ctx, token)
	if err != nil {
		h.l.Warnf(ctx, "provider.Verify: %v", err)
		response.OK(c, statusResp{Authenticated: false})
		return
	}

	response.OK(c, statusResp{Authenticated: ok})
}

// Logout handles POST /api/auth/logout: the stored credential is
// dropped. The next send acquires a fresh one transparently.
func (h *handler) Logout(c *gin.Context) {
	h.provider.Clear()
	response.OK(c, nil)
}

// respondError translates use-case errors into HTTP responses.
// Upstream errors pass through with their message unchanged.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err)
	case errors.Is(err, chat.ErrCredentialAcquisition):
		response.Unauthorized(c, err)
	default:
		response.UpstreamError(c, err)
	}
}
