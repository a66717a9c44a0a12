package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jobpilot/ats/api/http/presenter"
	"github.com/jobpilot/ats/pkg/research"
)

type ResearchHandler struct {
	company research.CompanyUseCase
	salary  research.SalaryUseCase
}

func NewResearchHandler(company research.CompanyUseCase, salary research.SalaryUseCase) *ResearchHandler {
	return &ResearchHandler{company: company, salary: salary}
}

// Company aggregates a public profile of a company from external sources.
// @Summary Company research
// @Tags    research
// @Produce json
// @Param   name path string true "company name"
// @Security BearerAuth
// @Success 200 {object} research.CompanyReport
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /research/company/{name} [get]
func (h *ResearchHandler) Company(c *fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return unauthorized(c)
	}
	rep, err := h.company.Research(c.Context(), c.Params("name"))
	if err != nil {
		var ev research.ErrValidation
		if errors.As(err, &ev) {
			return presenter.Error(c, http.StatusBadRequest, ev.Error())
		}
		return internalError(c, "company research", err)
	}
	return presenter.JSON(c, http.StatusOK, rep)
}

// Salary estimates a salary band for a role, compared with tracked jobs.
// @Summary Salary estimate
// @Tags    research
// @Produce json
// @Param   title    query string true  "role title"
// @Param   location query string false "location"
// @Param   years    query int    false "years of experience"
// @Security BearerAuth
// @Success 200 {object} research.SalaryEstimate
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /research/salary [get]
func (h *ResearchHandler) Salary(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	years := 0
	if raw := c.Query("years"); raw != "" {
		years, err = strconv.Atoi(raw)
		if err != nil || years < 0 {
			return presenter.Error(c, http.StatusBadRequest, "years must be a non-negative integer")
		}
	}
	est, err := h.salary.Estimate(c.Context(), uid, c.Query("title"), c.Query("location"), years)
	if err != nil {
		var ev research.ErrValidation
		if errors.As(err, &ev) {
			return presenter.Error(c, http.StatusBadRequest, ev.Error())
		}
		return internalError(c, "salary estimate", err)
	}
	return presenter.JSON(c, http.StatusOK, est)
}
