package handlers

import (
	"net/http"

	request "repair_hub/internal/adapter/http/dto/request"
	response "repair_hub/internal/adapter/http/dto/response"
	"repair_hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Login godoc
// @Summary      Sign in a shop
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Shop credentials"
// @Success      201   {object}  response.SessionResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	shopID, secret := payload.Credentials()
	session, token, err := h.usecase.Authenticate(c.Request.Context(), shopID, secret)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session, token))
}

// Logout godoc
// @Summary      Sign out and drop the session workspace
// @Tags         sessions
// @Security     Bearer
// @Success      204
// @Router       /sessions [delete]
func (h *SessionHandler) Logout(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	if err := h.usecase.Logout(c.Request.Context(), session); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Current session
// @Tags         sessions
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/me [get]
func (h *SessionHandler) Me(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session, ""))
}
