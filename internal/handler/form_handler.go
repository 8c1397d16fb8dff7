/**
* Name: 			form_handler.go
* Description: 		referral form endpoints
* Workflow: 		submit -> lookup / update / delete / resume replace by tracking token
 */
package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"AlumniJobForm_Backend/internal/models"
	"AlumniJobForm_Backend/internal/notify"
)

// /api/submitFormData request body (multipart/form-data, x-www-form-urlencoded or JSON)
type SubmitFormRequest struct {
	Name       string `form:"name" json:"name" binding:"required" example:"Asha Rao"`
	Email      string `form:"email" json:"email" binding:"required,email" example:"asha@example.com"`
	Contact    string `form:"contact" json:"contact" example:"+91 98765 43210"`
	Batch      string `form:"batch" json:"batch" example:"2019"`
	Location   string `form:"location" json:"location" example:"Pune"`
	Skillset   string `form:"skillset" json:"skillset" example:"Go, PostgreSQL"`
	Company    string `form:"company" json:"company" example:"Acme"`
	Experience string `form:"experience" json:"experience" example:"3 years"`
	CTC        string `form:"ctc" json:"ctc" example:"12 LPA"`
	Message    string `form:"message" json:"message" example:"Looking for backend roles"`
}

type SubmitFormResponse struct {
	Message string `json:"message" example:"Form data saved successfully"`
	TokenNo string `json:"tokenNo" example:"001"`
}

// /api/update-details request body. Absent fields are left unchanged. tokenNo and
// attachment cannot be changed here; the resume is replaced through /api/update-resume.
type UpdateDetailsRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Contact    *string `json:"contact"`
	Batch      *string `json:"batch"`
	Location   *string `json:"location"`
	Skillset   *string `json:"skillset"`
	Company    *string `json:"company"`
	Experience *string `json:"experience"`
	CTC        *string `json:"ctc"`
	Message    *string `json:"message"`
}

func (r SubmitFormRequest) record() models.FormRecord {
	return models.FormRecord{
		Name:       r.Name,
		Email:      r.Email,
		Contact:    r.Contact,
		Batch:      r.Batch,
		Location:   r.Location,
		Skillset:   r.Skillset,
		Company:    r.Company,
		Experience: r.Experience,
		CTC:        r.CTC,
		Message:    r.Message,
	}
}

func (r UpdateDetailsRequest) patch() models.FormPatch {
	return models.FormPatch{
		Name:       r.Name,
		Email:      r.Email,
		Contact:    r.Contact,
		Batch:      r.Batch,
		Location:   r.Location,
		Skillset:   r.Skillset,
		Company:    r.Company,
		Experience: r.Experience,
		CTC:        r.CTC,
		Message:    r.Message,
	}
}

func acknowledgement(f models.FormRecord) notify.Acknowledgement {
	ack := notify.Acknowledgement{
		TokenNo:    f.TokenNo,
		Name:       f.Name,
		Email:      f.Email,
		Contact:    f.Contact,
		Batch:      f.Batch,
		Location:   f.Location,
		Skillset:   f.Skillset,
		Company:    f.Company,
		Experience: f.Experience,
		CTC:        f.CTC,
		Message:    f.Message,
	}
	if f.Attachment != nil {
		ack.AttachmentPath = *f.Attachment
		ack.AttachmentName = filepath.Base(*f.Attachment)
	}
	return ack
}

// SubmitForm godoc
// @Summary      Submit a referral request
// @Description  Saves the form, assigns a tracking token and emails an acknowledgement.
// @Description  A failed acknowledgement is logged and does not undo the saved form.
// @Tags         Form
// @Accept       multipart/form-data
// @Produce      json
// @Param        name        formData  string  true   "Applicant name"
// @Param        email       formData  string  true   "Applicant email"
// @Param        contact     formData  string  false  "Contact number"
// @Param        batch       formData  string  false  "Graduation batch"
// @Param        location    formData  string  false  "Preferred location"
// @Param        skillset    formData  string  false  "Skills"
// @Param        company     formData  string  false  "Target company"
// @Param        experience  formData  string  false  "Experience"
// @Param        ctc         formData  string  false  "Current CTC"
// @Param        message     formData  string  false  "Message"
// @Param        attachment  formData  file    false  "Resume"
// @Success      201 {object} handler.SubmitFormResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/submitFormData [post]
func (h *Handler) SubmitForm(c *gin.Context) {
	var req SubmitFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid form data: " + err.Error()})
		return
	}

	fileHeader, err := c.FormFile("attachment")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid attachment"})
		return
	}

	record := req.record()
	var storedPath string
	if fileHeader != nil {
		storedPath, err = h.uploads.Save(fileHeader)
		if err != nil {
			respondError(c, "SubmitForm.save_upload", err, internalErrorBody, internalErrorBody)
			return
		}
		record.Attachment = &storedPath
	}

	if err := h.store.CreateForm(c.Request.Context(), &record); err != nil {
		h.discardUpload(c, storedPath)
		respondError(c, "SubmitForm.create", err, internalErrorBody, internalErrorBody)
		return
	}

	if err := h.notifier.Notify(c.Request.Context(), acknowledgement(record)); err != nil {
		logger(c).Error().Err(err).Str("token", record.TokenNo).Msg("SubmitForm(): acknowledgement failed, form kept")
	}

	c.JSON(http.StatusCreated, SubmitFormResponse{Message: "Form data saved successfully", TokenNo: record.TokenNo})
}

// GetJobDetails godoc
// @Summary      Look up a referral request
// @Tags         Form
// @Produce      json
// @Param        trackingId  path  string  true  "Tracking token (e.g. 001)"
// @Success      200 {object} models.FormRecord
// @Failure      404 {object} handler.MessageResponse
// @Failure      500 {object} handler.MessageResponse
// @Router       /api/job-details/{trackingId} [get]
func (h *Handler) GetJobDetails(c *gin.Context) {
	record, err := h.store.GetForm(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		respondError(c, "GetJobDetails", err, noRecordBody, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateDetails godoc
// @Summary      Update a referral request
// @Description  Applies the supplied fields only. The tracking token never changes.
// @Tags         Form
// @Accept       json
// @Produce      json
// @Param        trackingId  path  string                        true  "Tracking token"
// @Param        request     body  handler.UpdateDetailsRequest  true  "Fields to change"
// @Success      200 {object} models.FormRecord
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.MessageResponse
// @Failure      500 {object} handler.MessageResponse
// @Router       /api/update-details/{trackingId} [put]
func (h *Handler) UpdateDetails(c *gin.Context) {
	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	record, err := h.store.UpdateForm(c.Request.Context(), c.Param("trackingId"), req.patch())
	if err != nil {
		respondError(c, "UpdateDetails", err, noRecordBody, serverErrorBody)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteAccount godoc
// @Summary      Delete a referral request
// @Description  Removes the record and its stored attachment.
// @Tags         Form
// @Produce      json
// @Param        trackingId  path  string  true  "Tracking token"
// @Success      200 {object} handler.MessageResponse
// @Failure      404 {object} handler.MessageResponse
// @Failure      500 {object} handler.MessageResponse
// @Router       /api/delete-account/{trackingId} [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	record, err := h.store.DeleteForm(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		respondError(c, "DeleteAccount", err, noRecordBody, serverErrorBody)
		return
	}
	if record.Attachment != nil {
		h.discardUpload(c, *record.Attachment)
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Account deleted successfully"})
}

// UpdateResume godoc
// @Summary      Replace the attached resume
// @Tags         Form
// @Accept       multipart/form-data
// @Produce      json
// @Param        trackingId  path      string  true  "Tracking token"
// @Param        resume      formData  file    true  "New resume"
// @Success      200 {object} handler.MessageResponse
// @Failure      400 {object} handler.MessageResponse "No file uploaded"
// @Failure      404 {object} handler.MessageResponse
// @Failure      500 {object} handler.MessageResponse
// @Router       /api/update-resume/{trackingId} [post]
func (h *Handler) UpdateResume(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "No file uploaded"})
		return
	}

	storedPath, err := h.uploads.Save(fileHeader)
	if err != nil {
		respondError(c, "UpdateResume.save_upload", err, serverErrorBody, serverErrorBody)
		return
	}

	previous, err := h.store.SetAttachment(c.Request.Context(), c.Param("trackingId"), storedPath)
	if err != nil {
		h.discardUpload(c, storedPath)
		respondError(c, "UpdateResume", err, noRecordBody, serverErrorBody)
		return
	}
	if previous != nil && *previous != storedPath {
		h.discardUpload(c, *previous)
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Resume updated successfully"})
}
