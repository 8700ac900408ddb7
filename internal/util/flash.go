package util

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// FlashMessage is a one-request-lifetime status message shown after a
// redirect. Kind is "success" or "error".
type FlashMessage struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Flashes are stored as "kind|message" strings so the cookie store needs no
// gob registration.
func Flash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(kind + "|" + message)
	_ = session.Save()
}

// TakeFlashes returns the pending flash messages and clears them.
func TakeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}
	messages := make([]FlashMessage, 0, len(raw))
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		kind, message, found := strings.Cut(s, "|")
		if !found {
			messages = append(messages, FlashMessage{Kind: "info", Message: s})
			continue
		}
		messages = append(messages, FlashMessage{Kind: kind, Message: message})
	}
	return messages
}
