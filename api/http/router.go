package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobpilot/ats/api/http/handlers"
)

// Handlers carries every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Health    *handlers.HealthHandler
	Jobs      *handlers.JobHandler
	SkillGap  *handlers.SkillGapHandler
	Profile   *handlers.ProfileHandler
	Skills    *handlers.SkillsHandler
	Documents *handlers.DocumentHandler
	Research  *handlers.ResearchHandler
}

// Register wires all HTTP routes onto the given Fiber app. Everything except
// auth and the probe endpoints sits behind the JWT middleware.
func Register(app *fiber.App, authMW fiber.Handler, h Handlers) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", h.Health.Health)
	api.Get("/ready", h.Health.Ready)

	a := api.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	// Job pipeline
	jobs := api.Group("/jobs", authMW)
	jobs.Post("/", h.Jobs.Create)
	jobs.Get("/", h.Jobs.List)
	// Bulk route registered before the :id routes so "bulk" is never
	// captured as a job id.
	jobs.Put("/bulk/deadline", h.Jobs.BulkDeadline)
	jobs.Get("/:id", h.Jobs.GetByID)
	jobs.Put("/:id", h.Jobs.Update)
	jobs.Put("/:id/status", h.Jobs.UpdateStatus)
	jobs.Delete("/:id", h.Jobs.Delete)

	// Skill-gap analysis
	api.Get("/skills-gap/:jobId", authMW, h.SkillGap.Analyze)
	api.Get("/match-history", authMW, h.SkillGap.History)

	// Profile
	p := api.Group("/profile", authMW)
	p.Get("/", h.Profile.Get)
	p.Put("/", h.Profile.Save)
	p.Post("/import", h.Profile.Import)

	sk := api.Group("/skills", authMW)
	sk.Get("/", h.Skills.List)
	sk.Post("/", h.Skills.Create)
	sk.Put("/:id", h.Skills.Update)
	sk.Delete("/:id", h.Skills.Delete)

	emp := api.Group("/employment", authMW)
	emp.Get("/", h.Profile.ListEmployment)
	emp.Post("/", h.Profile.AddEmployment)
	emp.Delete("/:id", h.Profile.DeleteEmployment)

	edu := api.Group("/education", authMW)
	edu.Get("/", h.Profile.ListEducation)
	edu.Post("/", h.Profile.AddEducation)
	edu.Delete("/:id", h.Profile.DeleteEducation)

	// Generated documents
	docs := api.Group("/documents", authMW)
	docs.Post("/resume", h.Documents.GenerateResume)
	docs.Post("/cover-letter", h.Documents.GenerateCoverLetter)
	docs.Get("/", h.Documents.List)
	docs.Get("/:id", h.Documents.GetByID)
	docs.Delete("/:id", h.Documents.Delete)

	// External research
	r := api.Group("/research", authMW)
	r.Get("/company/:name", h.Research.Company)
	r.Get("/salary", h.Research.Salary)
}
