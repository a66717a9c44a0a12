package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobpilot/ats/api/http/presenter"
	"github.com/jobpilot/ats/pkg/profile"
)

type SkillsHandler struct {
	uc profile.UseCase
}

func NewSkillsHandler(uc profile.UseCase) *SkillsHandler { return &SkillsHandler{uc: uc} }

func profileError(c *fiber.Ctx, op string, err error) error {
	var ve profile.ErrValidation
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "not found")
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, ve.Error())
	default:
		return internalError(c, op, err)
	}
}

type skillRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

// List returns the caller's skills.
// @Summary List skills
// @Tags    skills
// @Produce json
// @Security BearerAuth
// @Success 200 {array} profile.Skill
// @Router  /skills [get]
func (h *SkillsHandler) List(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	skills, err := h.uc.ListSkills(c.Context(), uid)
	if err != nil {
		return profileError(c, "list skills", err)
	}
	if skills == nil {
		skills = []profile.Skill{}
	}
	return presenter.JSON(c, http.StatusOK, skills)
}

// Create adds a skill to the caller's profile.
// @Summary Add skill
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   input body skillRequest true "skill payload"
// @Security BearerAuth
// @Success 201 {object} profile.Skill
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /skills [post]
func (h *SkillsHandler) Create(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	var req skillRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	sk, err := h.uc.AddSkill(c.Context(), profile.Skill{
		ID:          uuid.New(),
		UserID:      uid,
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		return profileError(c, "add skill", err)
	}
	return presenter.JSON(c, http.StatusCreated, sk)
}

// Update edits a skill.
// @Summary Update skill
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   id path string true "skill id (UUID)"
// @Param   input body skillRequest true "skill payload"
// @Security BearerAuth
// @Success 200 {object} profile.Skill
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /skills/{id} [put]
func (h *SkillsHandler) Update(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req skillRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	sk, err := h.uc.UpdateSkill(c.Context(), uid, id, profile.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		return profileError(c, "update skill", err)
	}
	return presenter.JSON(c, http.StatusOK, sk)
}

// Delete removes a skill.
// @Summary Delete skill
// @Tags    skills
// @Produce json
// @Param   id path string true "skill id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /skills/{id} [delete]
func (h *SkillsHandler) Delete(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.RemoveSkill(c.Context(), uid, id); err != nil {
		return profileError(c, "delete skill", err)
	}
	return c.SendStatus(http.StatusNoContent)
}
