package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobpilot/ats/api/http/presenter"
	"github.com/jobpilot/ats/pkg/job"
)

type JobHandler struct {
	uc job.UseCase
}

func NewJobHandler(uc job.UseCase) *JobHandler { return &JobHandler{uc: uc} }

// jobView decorates a job with the derived deadline fields clients render.
type jobView struct {
	job.Job
	DaysUntilDeadline *int        `json:"daysUntilDeadline"`
	Urgency           job.Urgency `json:"urgency"`
}

func viewOf(j job.Job) jobView {
	days := job.DaysUntil(j.Deadline, time.Now().UTC())
	return jobView{Job: j, DaysUntilDeadline: days, Urgency: job.ClassifyUrgency(days)}
}

func viewsOf(jobs []job.Job) []jobView {
	out := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, viewOf(j))
	}
	return out
}

// jobError maps domain errors onto HTTP responses.
func jobError(c *fiber.Ctx, op string, err error) error {
	var ve job.ErrValidation
	switch {
	case errors.Is(err, job.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "job not found")
	case errors.Is(err, job.ErrInvalidStatus):
		return presenter.ErrorCode(c, http.StatusBadRequest, "INVALID_STATUS", "status must be one of the six pipeline stages")
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, ve.Error())
	default:
		return internalError(c, op, err)
	}
}

type createJobRequest struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	SalaryMin      *int     `json:"salaryMin"`
	SalaryMax      *int     `json:"salaryMax"`
	URL            string   `json:"url"`
	Deadline       string   `json:"deadline"`
	Description    string   `json:"description"`
	Industry       string   `json:"industry"`
	Type           string   `json:"type"`
	Notes          string   `json:"notes"`
	ContactName    string   `json:"contactName"`
	ContactEmail   string   `json:"contactEmail"`
	ContactPhone   string   `json:"contactPhone"`
	RequiredSkills []string `json:"requiredSkills"`
}

// Create adds a job to the pipeline; it always starts at "Interested".
// @Summary Create job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body createJobRequest true "job payload"
// @Security BearerAuth
// @Success 201 {object} jobView
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	j := job.Job{
		ID:             uuid.New(),
		OwnerID:        uid,
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		URL:            req.URL,
		Description:    req.Description,
		Industry:       req.Industry,
		Type:           req.Type,
		Notes:          req.Notes,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		RequiredSkills: req.RequiredSkills,
	}
	if strings.TrimSpace(req.Deadline) != "" {
		t, err := parseDate(req.Deadline)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid deadline date")
		}
		j.Deadline = &t
	}
	created, err := h.uc.Create(c.Context(), j)
	if err != nil {
		return jobError(c, "create job", err)
	}
	return presenter.JSON(c, http.StatusCreated, viewOf(created))
}

// List returns the caller's jobs, filtered and sorted.
// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Param   search query string false "substring match on title, company, description"
// @Param   status query string false "pipeline stage"
// @Param   industry query string false "industry"
// @Param   location query string false "location substring"
// @Param   salaryMin query int false "minimum salary"
// @Param   salaryMax query int false "maximum salary"
// @Param   dateFrom query string false "created from (YYYY-MM-DD)"
// @Param   dateTo query string false "created to (YYYY-MM-DD)"
// @Param   sortBy query string false "date_added | deadline | salary | company"
// @Security BearerAuth
// @Success 200 {array} jobView
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	f := job.ListFilter{
		Search:   c.Query("search"),
		Status:   job.Status(c.Query("status")),
		Industry: c.Query("industry"),
		Location: c.Query("location"),
		SortBy:   c.Query("sortBy"),
	}
	if v := c.Query("salaryMin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "salaryMin must be a number")
		}
		f.SalaryMin = &n
	}
	if v := c.Query("salaryMax"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "salaryMax must be a number")
		}
		f.SalaryMax = &n
	}
	if v := c.Query("dateFrom"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid dateFrom")
		}
		f.DateFrom = &t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid dateTo")
		}
		f.DateTo = &t
	}
	jobs, err := h.uc.List(c.Context(), uid, f)
	if err != nil {
		return jobError(c, "list jobs", err)
	}
	return presenter.JSON(c, http.StatusOK, viewsOf(jobs))
}

// GetByID fetches one owned job.
// @Summary Get job
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Security BearerAuth
// @Success 200 {object} jobView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	j, err := h.uc.Get(c.Context(), uid, id)
	if err != nil {
		return jobError(c, "get job", err)
	}
	return presenter.JSON(c, http.StatusOK, viewOf(j))
}

type updateJobRequest struct {
	Title             *string `json:"title"`
	Company           *string `json:"company"`
	Location          *string `json:"location"`
	Status            *string `json:"status"`
	SalaryMin         *int    `json:"salaryMin"`
	SalaryMax         *int    `json:"salaryMax"`
	Deadline          *string `json:"deadline"`
	Description       *string `json:"description"`
	Industry          *string `json:"industry"`
	Type              *string `json:"type"`
	Notes             *string `json:"notes"`
	ContactName       *string `json:"contactName"`
	ContactEmail      *string `json:"contactEmail"`
	ContactPhone      *string `json:"contactPhone"`
	SalaryNotes       *string `json:"salaryNotes"`
	InterviewFeedback *string `json:"interviewFeedback"`
}

func (req updateJobRequest) patch() (map[string]any, error) {
	patch := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			patch[col] = *v
		}
	}
	set("title", req.Title)
	set("company", req.Company)
	set("location", req.Location)
	set("description", req.Description)
	set("industry", req.Industry)
	set("type", req.Type)
	set("notes", req.Notes)
	set("contact_name", req.ContactName)
	set("contact_email", req.ContactEmail)
	set("contact_phone", req.ContactPhone)
	set("salary_notes", req.SalaryNotes)
	set("interview_feedback", req.InterviewFeedback)
	if req.Status != nil {
		patch["status"] = job.Status(*req.Status)
	}
	if req.SalaryMin != nil {
		patch["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		patch["salary_max"] = *req.SalaryMax
	}
	if req.Deadline != nil {
		if strings.TrimSpace(*req.Deadline) == "" {
			var cleared *time.Time
			patch["deadline"] = cleared
		} else {
			t, err := parseDate(*req.Deadline)
			if err != nil {
				return nil, err
			}
			patch["deadline"] = &t
		}
	}
	return patch, nil
}

// Update applies a partial update over the allow-listed fields.
// @Summary Update job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Param   input body updateJobRequest true "fields to update"
// @Security BearerAuth
// @Success 200 {object} jobView
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req updateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	patch, err := req.patch()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid deadline date")
	}
	j, err := h.uc.Update(c.Context(), uid, id, patch)
	if err != nil {
		return jobError(c, "update job", err)
	}
	return presenter.JSON(c, http.StatusOK, viewOf(j))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus performs a status-only pipeline transition.
// @Summary Update job status
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Param   input body updateStatusRequest true "new status"
// @Security BearerAuth
// @Success 200 {object} jobView
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/status [put]
func (h *JobHandler) UpdateStatus(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	j, err := h.uc.UpdateStatus(c.Context(), uid, id, job.Status(req.Status))
	if err != nil {
		return jobError(c, "update job status", err)
	}
	return presenter.JSON(c, http.StatusOK, viewOf(j))
}

type bulkDeadlineRequest struct {
	JobIDs    []string `json:"jobIds"`
	DaysToAdd int      `json:"daysToAdd"`
}

// BulkDeadline shifts deadlines for a set of owned jobs.
// @Summary Bulk extend deadlines
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body bulkDeadlineRequest true "job ids and day delta"
// @Security BearerAuth
// @Success 200 {array} job.DeadlineShift
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/bulk/deadline [put]
func (h *JobHandler) BulkDeadline(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	var req bulkDeadlineRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	ids := make([]uuid.UUID, 0, len(req.JobIDs))
	for _, raw := range req.JobIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "jobIds contains an invalid UUID")
		}
		ids = append(ids, id)
	}
	shifts, err := h.uc.ExtendDeadlines(c.Context(), uid, ids, req.DaysToAdd)
	if err != nil {
		return jobError(c, "bulk extend deadlines", err)
	}
	return presenter.JSON(c, http.StatusOK, shifts)
}

// Delete removes an owned job.
// @Summary Delete job
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		return jobError(c, "delete job", err)
	}
	return c.SendStatus(http.StatusNoContent)
}
