package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type VerifyCaptchaRequest struct {
	Value string `json:"value" binding:"required" example:"03AFcWeA6..."`
}

// VerifyCaptcha godoc
// @Summary      Verify a reCAPTCHA response
// @Description  Both outcomes answer 201; only a failure to reach the verifier is a 500.
// @Tags         Captcha
// @Accept       json
// @Produce      json
// @Param        request body handler.VerifyCaptchaRequest true "Challenge response from the widget"
// @Success      201 {object} handler.MessageResponse "Captcha Success / Captcha Failed"
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/verifycaptcha [post]
func (h *Handler) VerifyCaptcha(c *gin.Context) {
	var req VerifyCaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	ok, err := h.captcha.Verify(c.Request.Context(), req.Value)
	if err != nil {
		respondError(c, "VerifyCaptcha", err, internalErrorBody, internalErrorBody)
		return
	}
	if !ok {
		c.JSON(http.StatusCreated, MessageResponse{Message: "Captcha Failed"})
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Captcha Success"})
}
