package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"AlumniJobForm_Backend/internal/notify"
	"AlumniJobForm_Backend/internal/storage"
	"AlumniJobForm_Backend/internal/uploads"
)

type CaptchaVerifier interface {
	Verify(ctx context.Context, response string) (bool, error)
}

type Handler struct {
	store    *storage.Store
	uploads  *uploads.Store
	captcha  CaptchaVerifier
	notifier notify.Notifier
}

func New(store *storage.Store, uploadStore *uploads.Store, captcha CaptchaVerifier, notifier notify.Notifier) *Handler {
	return &Handler{
		store:    store,
		uploads:  uploadStore,
		captcha:  captcha,
		notifier: notifier,
	}
}

// RegisterRoutes mounts every endpoint. limiter guards the public write
// endpoints that are open to automated abuse.
func (h *Handler) RegisterRoutes(router gin.IRouter, limiter gin.HandlerFunc) {
	if limiter == nil {
		limiter = func(c *gin.Context) { c.Next() }
	}

	router.GET("/healthz", h.Healthz)
	router.POST("/companies", h.CreateCompany)
	router.GET("/companies", h.ListCompanies)

	api := router.Group("/api")
	{
		api.GET("/hello", h.Hello)
		api.POST("/submitFormData", limiter, h.SubmitForm)
		api.POST("/verifycaptcha", limiter, h.VerifyCaptcha)
		api.GET("/job-details/:trackingId", h.GetJobDetails)
		api.PUT("/update-details/:trackingId", h.UpdateDetails)
		api.DELETE("/delete-account/:trackingId", h.DeleteAccount)
		api.POST("/update-resume/:trackingId", h.UpdateResume)
		api.GET("/companies/:id", h.GetCompany)
	}
}

type MessageResponse struct {
	Message string `json:"message" example:"No record found"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Internal server error"`
}

var (
	internalErrorBody = ErrorResponse{Error: "Internal server error"}
	serverErrorBody   = MessageResponse{Message: "Server error"}
	noRecordBody      = MessageResponse{Message: "No record found"}
)

func logger(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}

// respondError maps err to NotFound or a generic Internal response. The root
// cause is logged, never returned to the client.
func respondError(c *gin.Context, op string, err error, notFoundBody, internalBody any) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, notFoundBody)
		return
	}
	logger(c).Error().Err(err).Str("op", op).Msg("request failed")
	c.JSON(http.StatusInternalServerError, internalBody)
}

// discardUpload removes a file written earlier in a request whose
// persistence step failed.
func (h *Handler) discardUpload(c *gin.Context, path string) {
	if path == "" {
		return
	}
	if err := h.uploads.Remove(path); err != nil {
		logger(c).Warn().Err(err).Str("path", path).Msg("discardUpload(): failed to remove orphaned upload")
	}
}
