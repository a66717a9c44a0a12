package importer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/ats/pkg/profile"
)

func TestDetectSkills(t *testing.T) {
	text := `Senior engineer with 7 years of Golang and PostgreSQL experience.
Built REST API services on k8s, CI/CD with Jenkins. Some React on the side.`

	got := DetectSkills(text)

	// aliases resolve to the canonical vocabulary entry
	assert.Contains(t, got, "go")         // via "golang"
	assert.Contains(t, got, "postgresql") // direct
	assert.Contains(t, got, "kubernetes") // via "k8s"
	assert.Contains(t, got, "rest api")
	assert.Contains(t, got, "jenkins")
	assert.Contains(t, got, "react")
	assert.Contains(t, got, "ci cd") // "CI/CD" normalizes to "ci cd"
	assert.NotContains(t, got, "python")
}

func TestDetectSkillsWholePhraseOnly(t *testing.T) {
	// "javascript" inside another word must not match, and neither should
	// a partial phrase.
	got := DetectSkills("I wrote javascripty things and a restful api")
	assert.NotContains(t, got, "javascript")
	assert.NotContains(t, got, "rest api")
}

func TestDetectSkillsSpecialCharacters(t *testing.T) {
	got := DetectSkills("Fluent in C++ and C#, dabbled in C")
	assert.Contains(t, got, "c++")
	assert.Contains(t, got, "c#")
}

// upsertRecorder fakes the single repository method the importer touches.
type upsertRecorder struct {
	profile.Repository
	existing map[string]bool
	upserts  []profile.Skill
}

func (r *upsertRecorder) UpsertSkillByName(_ context.Context, s profile.Skill) (profile.Skill, bool, error) {
	r.upserts = append(r.upserts, s)
	if r.existing[s.Name] {
		return s, false, nil
	}
	return s, true, nil
}

func TestImportSplitsAddedAndSkipped(t *testing.T) {
	repo := &upsertRecorder{existing: map[string]bool{"python": true}}
	svc := NewService(repo)

	res, err := svc.Import(context.Background(), uuid.New(), "resume.txt",
		[]byte("Python and Docker in production"))
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "docker"}, res.Detected)
	assert.Equal(t, []string{"docker"}, res.Added)
	assert.Equal(t, []string{"python"}, res.Skipped)
	assert.Equal(t, "resume.txt", res.Filename)
	assert.Positive(t, res.CharsExtracted)

	for _, s := range repo.upserts {
		assert.Equal(t, "imported", s.Category)
		assert.Equal(t, importedProficiency, s.Proficiency)
	}
}

func TestImportRejectsEmptyText(t *testing.T) {
	svc := NewService(&upsertRecorder{})
	_, err := svc.Import(context.Background(), uuid.New(), "resume.txt", []byte("   \n\t"))
	assert.ErrorAs(t, err, new(profile.ErrValidation))
}
