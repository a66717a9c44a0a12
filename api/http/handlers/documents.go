package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobpilot/ats/api/http/presenter"
	"github.com/jobpilot/ats/pkg/document"
	"github.com/jobpilot/ats/pkg/job"
	"github.com/jobpilot/ats/pkg/profile"
)

type DocumentHandler struct {
	uc document.UseCase
}

func NewDocumentHandler(uc document.UseCase) *DocumentHandler { return &DocumentHandler{uc: uc} }

type generateRequest struct {
	JobID string `json:"jobId"`
	Notes string `json:"notes"`
}

func (h *DocumentHandler) generate(c *fiber.Ctx, kind document.Kind) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "jobId must be a valid UUID")
	}
	d, err := h.uc.Generate(c.Context(), uid, jobID, kind, req.Notes)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job not found")
		}
		// Profile must exist before anything can be generated.
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusBadRequest, "fill in your profile before generating documents")
		}
		return internalError(c, "generate "+string(kind), err)
	}
	return presenter.JSON(c, http.StatusCreated, d)
}

// GenerateResume creates an AI-tailored resume for a tracked job.
// @Summary Generate resume
// @Tags    documents
// @Accept  json
// @Produce json
// @Param   input body generateRequest true "target job"
// @Security BearerAuth
// @Success 201 {object} document.Document
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /documents/resume [post]
func (h *DocumentHandler) GenerateResume(c *fiber.Ctx) error {
	return h.generate(c, document.KindResume)
}

// GenerateCoverLetter creates an AI-tailored cover letter for a tracked job.
// @Summary Generate cover letter
// @Tags    documents
// @Accept  json
// @Produce json
// @Param   input body generateRequest true "target job"
// @Security BearerAuth
// @Success 201 {object} document.Document
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /documents/cover-letter [post]
func (h *DocumentHandler) GenerateCoverLetter(c *fiber.Ctx) error {
	return h.generate(c, document.KindCoverLetter)
}

// List returns the caller's generated documents, optionally by kind.
// @Summary List documents
// @Tags    documents
// @Produce json
// @Param   kind query string false "resume | cover_letter"
// @Security BearerAuth
// @Success 200 {array} document.Document
// @Router  /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	kind := document.Kind(c.Query("kind"))
	switch kind {
	case "", document.KindResume, document.KindCoverLetter:
	default:
		return presenter.Error(c, http.StatusBadRequest, "kind must be resume or cover_letter")
	}
	limit, offset := parseLimitOffset(c, 50)
	docs, err := h.uc.List(c.Context(), uid, kind, limit, offset)
	if err != nil {
		return internalError(c, "list documents", err)
	}
	if docs == nil {
		docs = []document.Document{}
	}
	return presenter.JSON(c, http.StatusOK, docs)
}

// GetByID fetches one generated document.
// @Summary Get document
// @Tags    documents
// @Produce json
// @Param   id path string true "document id (UUID)"
// @Security BearerAuth
// @Success 200 {object} document.Document
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	d, err := h.uc.Get(c.Context(), uid, id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "document not found")
		}
		return internalError(c, "get document", err)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Delete removes a generated document.
// @Summary Delete document
// @Tags    documents
// @Produce json
// @Param   id path string true "document id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "document not found")
		}
		return internalError(c, "delete document", err)
	}
	return c.SendStatus(http.StatusNoContent)
}
