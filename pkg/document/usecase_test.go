package document

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/ats/pkg/job"
	"github.com/jobpilot/ats/pkg/profile"
)

type docRepo struct {
	Repository
	created Document
}

func (r *docRepo) Create(_ context.Context, d Document) (Document, error) {
	r.created = d
	return d, nil
}

type docJobRepo struct {
	job.Repository
	j   job.Job
	err error
}

func (r *docJobRepo) GetForOwner(_ context.Context, _, _ uuid.UUID) (job.Job, error) {
	return r.j, r.err
}

type docProfileRepo struct {
	profile.Repository
	p   profile.Profile
	err error
}

func (r *docProfileRepo) GetProfile(_ context.Context, _ uuid.UUID) (profile.Profile, error) {
	return r.p, r.err
}

func (r *docProfileRepo) ListSkills(_ context.Context, _ uuid.UUID) ([]profile.Skill, error) {
	return []profile.Skill{{Name: "go", Proficiency: 4}}, nil
}

func (r *docProfileRepo) ListEmployment(_ context.Context, _ uuid.UUID) ([]profile.Employment, error) {
	return nil, nil
}

func (r *docProfileRepo) ListEducation(_ context.Context, _ uuid.UUID) ([]profile.Education, error) {
	return nil, nil
}

type fakeModel struct {
	system string
	user   string
}

func (m *fakeModel) Ask(_ context.Context, system, user string) (string, error) {
	m.system = system
	m.user = user
	return "  generated text  ", nil
}

func TestGenerateCoverLetter(t *testing.T) {
	owner, jobID := uuid.New(), uuid.New()
	repo := &docRepo{}
	model := &fakeModel{}
	svc := NewService(repo,
		&docJobRepo{j: job.Job{ID: jobID, OwnerID: owner, Title: "Backend Engineer", Company: "Acme", RequiredSkills: []string{"go"}}},
		&docProfileRepo{p: profile.Profile{FullName: "Dana Reeves"}},
		model, "test-model")

	doc, err := svc.Generate(context.Background(), owner, jobID, KindCoverLetter, "mention remote work")
	require.NoError(t, err)

	assert.Equal(t, KindCoverLetter, doc.Kind)
	assert.Equal(t, "generated text", doc.Content) // trimmed
	assert.Equal(t, "test-model", doc.Model)
	assert.Equal(t, "Cover letter — Backend Engineer at Acme", doc.Title)
	assert.Equal(t, repo.created, doc)

	assert.Contains(t, model.system, "cover letter")
	assert.Contains(t, model.user, "Dana Reeves")
	assert.Contains(t, model.user, "Backend Engineer")
	assert.Contains(t, model.user, "mention remote work")
}

func TestGenerateRejectsUnknownKind(t *testing.T) {
	svc := NewService(&docRepo{}, &docJobRepo{}, &docProfileRepo{}, &fakeModel{}, "m")
	_, err := svc.Generate(context.Background(), uuid.New(), uuid.New(), Kind("poem"), "")
	assert.Error(t, err)
}

func TestGenerateSurfacesJobNotFound(t *testing.T) {
	svc := NewService(&docRepo{}, &docJobRepo{err: job.ErrNotFound}, &docProfileRepo{}, &fakeModel{}, "m")
	_, err := svc.Generate(context.Background(), uuid.New(), uuid.New(), KindResume, "")
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestGenerateTruncatesLongPrompts(t *testing.T) {
	owner, jobID := uuid.New(), uuid.New()
	model := &fakeModel{}
	svc := NewService(&docRepo{},
		&docJobRepo{j: job.Job{Title: "Engineer", Company: "Acme", Description: strings.Repeat("résumé-worthy requirements • ", 2000)}},
		&docProfileRepo{p: profile.Profile{FullName: "Dana Reeves"}},
		model, "m")

	_, err := svc.Generate(context.Background(), owner, jobID, KindResume, "")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(model.user), 12_000)
	assert.True(t, utf8.ValidString(model.user))
}

func TestTruncatePromptKeepsRunesWhole(t *testing.T) {
	// every possible cut point inside a run of multibyte runes must land
	// on a rune boundary
	s := strings.Repeat("é", 10) // 2 bytes each
	for max := 0; max <= len(s)+1; max++ {
		got := truncatePrompt(s, max)
		assert.LessOrEqual(t, len(got), max, "max %d", max)
		assert.True(t, utf8.ValidString(got), "max %d", max)
	}
	assert.Equal(t, "abc", truncatePrompt("abc", 10))
}
