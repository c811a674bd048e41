package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/cykj40/padre-ginos-fem-sub000/pkg/resp"
)

type ContactController struct{ Log *slog.Logger }

func NewContactController(log *slog.Logger) *ContactController {
	return &ContactController{Log: log}
}

// POST /api/contact
// Fire-and-forget intake: the message is logged, not persisted.
func (h *ContactController) Submit(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "name, email and message are required")
		return
	}
	h.Log.Info("contact message received",
		"name", req.Name, "email", req.Email, "message", req.Message)
	resp.OK(c, gin.H{"ok": true})
}
