package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobpilot/ats/api/http/presenter"
	"github.com/jobpilot/ats/pkg/importer"
	"github.com/jobpilot/ats/pkg/profile"
)

// maxResumeUploadBytes caps resume import payloads.
const maxResumeUploadBytes = 10 << 20

type ProfileHandler struct {
	uc       profile.UseCase
	importer importer.UseCase
}

func NewProfileHandler(uc profile.UseCase, imp importer.UseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc, importer: imp}
}

// Get returns the caller's profile card.
// @Summary Get profile
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	p, err := h.uc.Get(c.Context(), uid)
	if err != nil {
		return profileError(c, "get profile", err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

type profileRequest struct {
	FullName string `json:"fullName"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// Save creates or replaces the caller's profile card.
// @Summary Save profile
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body profileRequest true "profile payload"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Save(c.Context(), profile.Profile{
		UserID:   uid,
		FullName: req.FullName,
		Headline: req.Headline,
		Summary:  req.Summary,
		Location: req.Location,
		Email:    req.Email,
		Phone:    req.Phone,
		LinkedIn: req.LinkedIn,
		GitHub:   req.GitHub,
	})
	if err != nil {
		return profileError(c, "save profile", err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Import parses an uploaded resume and adds detected skills to the profile.
// @Summary Import skills from a resume file
// @Tags    profile
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume (.pdf, .docx or .txt)"
// @Security BearerAuth
// @Success 200 {object} importer.ImportResult
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profile/import [post]
func (h *ProfileHandler) Import(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "file field is required")
	}
	if fileHeader.Size > maxResumeUploadBytes {
		return presenter.Error(c, http.StatusBadRequest, "file too large")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return internalError(c, "open upload", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return internalError(c, "read upload", err)
	}
	res, err := h.importer.Import(c.Context(), uid, fileHeader.Filename, data)
	if err != nil {
		if strings.Contains(err.Error(), "unsupported file format") {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return profileError(c, "import resume", err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

type employmentRequest struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// ListEmployment returns work-history entries.
// @Summary List employment
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {array} profile.Employment
// @Router  /employment [get]
func (h *ProfileHandler) ListEmployment(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	list, err := h.uc.ListEmployment(c.Context(), uid)
	if err != nil {
		return profileError(c, "list employment", err)
	}
	if list == nil {
		list = []profile.Employment{}
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// AddEmployment records a work-history entry.
// @Summary Add employment
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body employmentRequest true "employment payload"
// @Security BearerAuth
// @Success 201 {object} profile.Employment
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /employment [post]
func (h *ProfileHandler) AddEmployment(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	var req employmentRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	e := profile.Employment{
		ID:          uuid.New(),
		UserID:      uid,
		Company:     req.Company,
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
	}
	if strings.TrimSpace(req.StartDate) == "" {
		return presenter.Error(c, http.StatusBadRequest, "startDate is required")
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid startDate")
	}
	e.StartDate = start
	if strings.TrimSpace(req.EndDate) != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid endDate")
		}
		e.EndDate = &end
	}
	created, err := h.uc.AddEmployment(c.Context(), e)
	if err != nil {
		return profileError(c, "add employment", err)
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// DeleteEmployment removes a work-history entry.
// @Summary Delete employment
// @Tags    profile
// @Produce json
// @Param   id path string true "employment id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /employment/{id} [delete]
func (h *ProfileHandler) DeleteEmployment(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.RemoveEmployment(c.Context(), uid, id); err != nil {
		return profileError(c, "delete employment", err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type educationRequest struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// ListEducation returns education entries.
// @Summary List education
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {array} profile.Education
// @Router  /education [get]
func (h *ProfileHandler) ListEducation(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	list, err := h.uc.ListEducation(c.Context(), uid)
	if err != nil {
		return profileError(c, "list education", err)
	}
	if list == nil {
		list = []profile.Education{}
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// AddEducation records an education entry.
// @Summary Add education
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body educationRequest true "education payload"
// @Security BearerAuth
// @Success 201 {object} profile.Education
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /education [post]
func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	e := profile.Education{
		ID:           uuid.New(),
		UserID:       uid,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
	}
	if strings.TrimSpace(req.StartDate) != "" {
		t, err := parseDate(req.StartDate)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid startDate")
		}
		e.StartDate = &t
	}
	if strings.TrimSpace(req.EndDate) != "" {
		t, err := parseDate(req.EndDate)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid endDate")
		}
		e.EndDate = &t
	}
	created, err := h.uc.AddEducation(c.Context(), e)
	if err != nil {
		return profileError(c, "add education", err)
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// DeleteEducation removes an education entry.
// @Summary Delete education
// @Tags    profile
// @Produce json
// @Param   id path string true "education id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /education/{id} [delete]
func (h *ProfileHandler) DeleteEducation(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.RemoveEducation(c.Context(), uid, id); err != nil {
		return profileError(c, "delete education", err)
	}
	return c.SendStatus(http.StatusNoContent)
}
