package document

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jobpilot/ats/pkg/job"
	"github.com/jobpilot/ats/pkg/llm"
	"github.com/jobpilot/ats/pkg/profile"
)

// UseCase generates and manages resumes and cover letters.
type UseCase interface {
	Generate(ctx context.Context, ownerID, jobID uuid.UUID, kind Kind, extraNotes string) (Document, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Document, error)
	List(ctx context.Context, ownerID uuid.UUID, kind Kind, limit, offset int) ([]Document, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo           Repository
	jobs           job.Repository
	profiles       profile.Repository
	llm            llm.ChatModel
	modelName      string
	maxPromptChars int
}

func NewService(repo Repository, jobs job.Repository, profiles profile.Repository, model llm.ChatModel, modelName string) UseCase {
	return &service{
		repo:           repo,
		jobs:           jobs,
		profiles:       profiles,
		llm:            model,
		modelName:      modelName,
		maxPromptChars: 12_000,
	}
}

func (s *service) Generate(ctx context.Context, ownerID, jobID uuid.UUID, kind Kind, extraNotes string) (Document, error) {
	if kind != KindResume && kind != KindCoverLetter {
		return Document{}, fmt.Errorf("unknown document kind %q", kind)
	}
	j, err := s.jobs.GetForOwner(ctx, ownerID, jobID)
	if err != nil {
		return Document{}, err
	}
	p, err := s.profiles.GetProfile(ctx, ownerID)
	if err != nil {
		return Document{}, err
	}
	skills, err := s.profiles.ListSkills(ctx, ownerID)
	if err != nil {
		return Document{}, err
	}
	employment, err := s.profiles.ListEmployment(ctx, ownerID)
	if err != nil {
		return Document{}, err
	}
	education, err := s.profiles.ListEducation(ctx, ownerID)
	if err != nil {
		return Document{}, err
	}

	system, user := buildPrompt(kind, p, skills, employment, education, j, extraNotes)
	user = truncatePrompt(user, s.maxPromptChars)
	answer, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return Document{}, fmt.Errorf("generate %s: %w", kind, err)
	}

	title := fmt.Sprintf("%s — %s at %s", kindLabel(kind), j.Title, j.Company)
	return s.repo.Create(ctx, Document{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		JobID:     jobID,
		Kind:      kind,
		Title:     title,
		Content:   strings.TrimSpace(answer),
		Model:     s.modelName,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Document, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, kind Kind, limit, offset int) ([]Document, error) {
	return s.repo.ListByOwner(ctx, ownerID, kind, limit, offset)
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

// truncatePrompt caps the prompt at max bytes without splitting a rune.
func truncatePrompt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func kindLabel(kind Kind) string {
	if kind == KindCoverLetter {
		return "Cover letter"
	}
	return "Resume"
}

func buildPrompt(kind Kind, p profile.Profile, skills []profile.Skill, employment []profile.Employment, education []profile.Education, j job.Job, extraNotes string) (system, user string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate: %s", p.FullName)
	if p.Headline != "" {
		fmt.Fprintf(&b, " (%s)", p.Headline)
	}
	b.WriteString("\n")
	if p.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", p.Summary)
	}
	if p.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", p.Location)
	}
	if len(skills) > 0 {
		b.WriteString("Skills:")
		for _, sk := range skills {
			fmt.Fprintf(&b, " %s (%d/5);", sk.Name, sk.Proficiency)
		}
		b.WriteString("\n")
	}
	if len(employment) > 0 {
		b.WriteString("Employment history:\n")
		for _, e := range employment {
			end := "present"
			if e.EndDate != nil {
				end = e.EndDate.Format("2006-01")
			}
			fmt.Fprintf(&b, "- %s at %s, %s to %s. %s\n", e.Title, e.Company, e.StartDate.Format("2006-01"), end, e.Description)
		}
	}
	if len(education) > 0 {
		b.WriteString("Education:\n")
		for _, e := range education {
			fmt.Fprintf(&b, "- %s, %s %s\n", e.Institution, e.Degree, e.FieldOfStudy)
		}
	}
	fmt.Fprintf(&b, "\nTarget role: %s at %s\n", j.Title, j.Company)
	if j.Description != "" {
		fmt.Fprintf(&b, "Job description:\n<<<\n%s\n>>>\n", j.Description)
	}
	if len(j.RequiredSkills) > 0 {
		fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(j.RequiredSkills, ", "))
	}
	if extraNotes != "" {
		fmt.Fprintf(&b, "Additional instructions from the candidate: %s\n", extraNotes)
	}

	if kind == KindCoverLetter {
		system = "You are an expert career coach. Write a concise, specific cover letter (under 350 words) tailored to the given role. Plain text, no placeholders left unfilled."
		b.WriteString("\nWrite the cover letter now.")
	} else {
		system = "You are an expert resume writer. Produce a tailored one-page resume in clean Markdown, emphasizing experience relevant to the target role. Do not invent facts."
		b.WriteString("\nWrite the resume now.")
	}
	return system, b.String()
}
