package httpapi

import (
	"github.com/gin-gonic/gin"

	"chat-session-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the send route is rate limited: context and status reads are
// cheap local operations.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("/messages", mw.RateLimit(), h.SendMessage)
		chatGroup.GET("/context", h.GetContext)
		chatGroup.DELETE("/context", h.ClearContext)
	}

	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/status", h.AuthStatus)
		authGroup.POST("/logout", h.Logout)
	}
}
