package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"AlumniJobForm_Backend/internal/models"
	"AlumniJobForm_Backend/internal/storage"
)

type CreateCompanyRequest struct {
	CompanyID        string   `json:"company_id" binding:"required" example:"acme-be-01"`
	Name             string   `json:"name" binding:"required" example:"Acme"`
	JobRole          string   `json:"job_role" binding:"required" example:"Backend Engineer"`
	JobDescription   string   `json:"job_description" binding:"required" example:"Build and run referral APIs"`
	SkillsetRequired []string `json:"skillset_required" binding:"required" example:"go,sql"`
	ExpectedCTC      string   `json:"expected_ctc" binding:"required" example:"20 LPA"`
}

type CreateCompanyResponse struct {
	Message string         `json:"message" example:"Company added successfully"`
	Company models.Company `json:"company"`
}

var companyNotFoundBody = MessageResponse{Message: "Company not found"}

// CreateCompany godoc
// @Summary      Register a company job posting
// @Description  company_id must be unique; a duplicate is answered with a generic 500.
// @Tags         Company
// @Accept       json
// @Produce      json
// @Param        request body handler.CreateCompanyRequest true "Company posting"
// @Success      201 {object} handler.CreateCompanyResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /companies [post]
func (h *Handler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	company := models.Company{
		CompanyID:        req.CompanyID,
		Name:             req.Name,
		JobRole:          req.JobRole,
		JobDescription:   req.JobDescription,
		SkillsetRequired: req.SkillsetRequired,
		ExpectedCTC:      req.ExpectedCTC,
	}
	if err := h.store.CreateCompany(c.Request.Context(), company); err != nil {
		if errors.Is(err, storage.ErrCompanyExists) {
			logger(c).Warn().Str("company_id", req.CompanyID).Msg("CreateCompany(): duplicate company_id")
			c.JSON(http.StatusInternalServerError, internalErrorBody)
			return
		}
		respondError(c, "CreateCompany", err, internalErrorBody, internalErrorBody)
		return
	}

	c.JSON(http.StatusCreated, CreateCompanyResponse{Message: "Company added successfully", Company: company})
}

// ListCompanies godoc
// @Summary      List company job postings
// @Tags         Company
// @Produce      json
// @Success      200 {array}  models.Company
// @Failure      500 {object} handler.ErrorResponse
// @Router       /companies [get]
func (h *Handler) ListCompanies(c *gin.Context) {
	companies, err := h.store.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, "ListCompanies", err, internalErrorBody, internalErrorBody)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany godoc
// @Summary      Get a company job posting
// @Tags         Company
// @Produce      json
// @Param        id  path  string  true  "company_id"
// @Success      200 {object} models.Company
// @Failure      404 {object} handler.MessageResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *Handler) GetCompany(c *gin.Context) {
	company, err := h.store.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetCompany", err, companyNotFoundBody, internalErrorBody)
		return
	}
	c.JSON(http.StatusOK, company)
}
