package handlers

import (
	"net/http"

	"vpms_backend/internal/services"
	"vpms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ConfirmEmail handles the link sent in the confirmation email. The code
// travels in the "cc" query parameter.
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	userID := c.Param("userId")
	code := c.Query("cc")

	db := h.GetDB(c)

	response, err := h.authService.ConfirmEmail(db, userID, code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) ResendConfirmation(c *gin.Context) {
	var req dto.ResendConfirmationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.ResendConfirmation(db, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Confirmation email sent",
	})
}
