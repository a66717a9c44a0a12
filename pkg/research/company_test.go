package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/ats/pkg/research/newsapi"
	"github.com/jobpilot/ats/pkg/research/wikipedia"
)

type fakeWiki struct {
	summary wikipedia.Summary
	err     error
}

func (f fakeWiki) PageSummary(_ context.Context, _ string) (wikipedia.Summary, error) {
	return f.summary, f.err
}

type fakeNews struct {
	articles []newsapi.Article
	err      error
}

func (f fakeNews) Headlines(_ context.Context, _ string, _ int) ([]newsapi.Article, error) {
	return f.articles, f.err
}

func TestCompanyResearchMergesSources(t *testing.T) {
	svc := NewCompanyService(
		fakeWiki{summary: wikipedia.Summary{
			Extract:     "Acme makes everything.",
			Description: "Conglomerate",
			PageURL:     "https://en.wikipedia.org/wiki/Acme",
		}},
		fakeNews{articles: []newsapi.Article{{Title: "Acme ships anvils"}}},
	)

	rep, err := svc.Research(context.Background(), " Acme ")
	require.NoError(t, err)
	assert.Equal(t, "Acme", rep.Company)
	assert.Equal(t, "Acme makes everything.", rep.Summary)
	assert.Equal(t, "Conglomerate", rep.Description)
	require.Len(t, rep.News, 1)
}

func TestCompanyResearchToleratesOneFailure(t *testing.T) {
	svc := NewCompanyService(
		fakeWiki{err: errors.New("wiki down")},
		fakeNews{articles: []newsapi.Article{{Title: "still here"}}},
	)

	rep, err := svc.Research(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Empty(t, rep.Summary)
	require.Len(t, rep.News, 1)
}

func TestCompanyResearchFailsWhenAllSourcesFail(t *testing.T) {
	svc := NewCompanyService(
		fakeWiki{err: errors.New("wiki down")},
		fakeNews{err: errors.New("news down")},
	)

	_, err := svc.Research(context.Background(), "Acme")
	assert.ErrorAs(t, err, new(ErrUpstream))
}

func TestCompanyResearchRequiresName(t *testing.T) {
	svc := NewCompanyService(fakeWiki{}, fakeNews{})
	_, err := svc.Research(context.Background(), "  ")
	assert.ErrorAs(t, err, new(ErrValidation))
}
