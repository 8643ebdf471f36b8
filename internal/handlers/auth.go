package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/unison/inventory-manager/api/v1"
)

// Login exchanges credentials for an API token
// (POST /login)
func (h *Handler) Login(c *gin.Context) {
	var req v1.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "username and password are required"})
		return
	}

	p, err := h.authSrv.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, "auth_handler", "failed to authenticate", err)
		return
	}

	token, err := h.tokens.Issue(p)
	if err != nil {
		writeError(c, "auth_handler", "failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, v1.LoginResponse{Token: token, User: p.Name, Role: p.Role})
}
