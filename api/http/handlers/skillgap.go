package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobpilot/ats/api/http/presenter"
	"github.com/jobpilot/ats/pkg/job"
	"github.com/jobpilot/ats/pkg/skillgap"
)

type SkillGapHandler struct {
	uc skillgap.UseCase
}

func NewSkillGapHandler(uc skillgap.UseCase) *SkillGapHandler { return &SkillGapHandler{uc: uc} }

// Analyze produces a skill-gap report for an owned job.
// @Summary Skill-gap report
// @Tags    skill-gap
// @Produce json
// @Param   jobId path string true "job id (UUID)"
// @Security BearerAuth
// @Success 200 {object} skillgap.Report
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /skills-gap/{jobId} [get]
func (h *SkillGapHandler) Analyze(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	rep, err := h.uc.Analyze(c.Context(), uid, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job not found")
		}
		return internalError(c, "skill-gap analysis", err)
	}
	return presenter.JSON(c, http.StatusOK, rep)
}

// History lists past skill-gap runs for the caller.
// @Summary Match history
// @Tags    skill-gap
// @Produce json
// @Security BearerAuth
// @Success 200 {array} skillgap.MatchRecord
// @Router  /match-history [get]
func (h *SkillGapHandler) History(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	limit, offset := parseLimitOffset(c, 50)
	recs, err := h.uc.History(c.Context(), uid, limit, offset)
	if err != nil {
		return internalError(c, "list match history", err)
	}
	if recs == nil {
		recs = []skillgap.MatchRecord{}
	}
	return presenter.JSON(c, http.StatusOK, recs)
}
