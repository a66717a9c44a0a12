package importer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobpilot/ats/pkg/nlp"
	"github.com/jobpilot/ats/pkg/profile"
)

// knownSkills is the detection vocabulary for resume import. Detection is
// alias-aware whole-phrase matching on normalized text.
var knownSkills = []string{
	"python", "javascript", "typescript", "go", "java", "c++", "c#", "ruby",
	"rust", "php", "kotlin", "swift", "scala", "sql", "nosql", "html", "css",
	"react", "angular", "vue", "node", "django", "flask", "spring", "rails",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "git", "linux", "graphql", "rest api", "grpc",
	"machine learning", "deep learning", "data analysis", "pandas", "numpy",
	"tensorflow", "pytorch", "spark", "airflow", "tableau", "power bi",
	"agile", "scrum", "project management", "ci cd",
}

// ImportResult reports what a resume import did.
type ImportResult struct {
	Filename       string   `json:"filename"`
	CharsExtracted int      `json:"charsExtracted"`
	Detected       []string `json:"detected"`
	Added          []string `json:"added"`
	Skipped        []string `json:"skipped"` // already present on the profile
}

// UseCase imports skills into the profile from an uploaded resume file.
type UseCase interface {
	Import(ctx context.Context, userID uuid.UUID, filename string, data []byte) (ImportResult, error)
}

type service struct {
	profiles profile.Repository
}

func NewService(profiles profile.Repository) UseCase {
	return &service{profiles: profiles}
}

// importedProficiency is assumed for detected skills; the user adjusts later.
const importedProficiency = 3

func (s *service) Import(ctx context.Context, userID uuid.UUID, filename string, data []byte) (ImportResult, error) {
	text, err := ParseResumeText(filename, data)
	if err != nil {
		return ImportResult{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ImportResult{}, profile.ErrValidation("resume contains no extractable text")
	}

	detected := DetectSkills(text)
	res := ImportResult{
		Filename:       filename,
		CharsExtracted: len(text),
		Detected:       detected,
		Added:          []string{},
		Skipped:        []string{},
	}

	for _, name := range detected {
		_, created, err := s.profiles.UpsertSkillByName(ctx, profile.Skill{
			ID:          uuid.New(),
			UserID:      userID,
			Name:        name,
			Category:    "imported",
			Proficiency: importedProficiency,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return ImportResult{}, err
		}
		if created {
			res.Added = append(res.Added, name)
		} else {
			res.Skipped = append(res.Skipped, name)
		}
	}
	return res, nil
}

// DetectSkills scans normalized resume text for known skills, including
// their aliases, and returns canonical names in vocabulary order.
func DetectSkills(text string) []string {
	norm := nlp.Normalize(text)
	var out []string
	for _, skill := range knownSkills {
		for _, variant := range nlp.SkillVariants(skill) {
			if nlp.ContainsPhrase(norm, variant) {
				out = append(out, skill)
				break
			}
		}
	}
	return out
}
