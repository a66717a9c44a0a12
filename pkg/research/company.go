package research

import (
	"context"
	"log"
	"strings"

	"github.com/jobpilot/ats/pkg/research/newsapi"
	"github.com/jobpilot/ats/pkg/research/wikipedia"
)

// CompanyReport aggregates what the service could find about a company.
// Either section may be empty when its upstream source failed; the request
// succeeds as long as one source answered.
type CompanyReport struct {
	Company     string            `json:"company"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	WikiURL     string            `json:"wikiUrl,omitempty"`
	News        []newsapi.Article `json:"news"`
}

// WikiClient is the slice of the Wikipedia client the use case needs.
type WikiClient interface {
	PageSummary(ctx context.Context, title string) (wikipedia.Summary, error)
}

// NewsClient is the slice of the NewsAPI client the use case needs.
type NewsClient interface {
	Headlines(ctx context.Context, query string, limit int) ([]newsapi.Article, error)
}

// CompanyUseCase performs company research against external sources.
type CompanyUseCase interface {
	Research(ctx context.Context, company string) (CompanyReport, error)
}

type companyService struct {
	wiki WikiClient
	news NewsClient
}

func NewCompanyService(wiki WikiClient, news NewsClient) CompanyUseCase {
	return &companyService{wiki: wiki, news: news}
}

func (s *companyService) Research(ctx context.Context, company string) (CompanyReport, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return CompanyReport{}, ErrValidation("company name is required")
	}

	rep := CompanyReport{Company: company, News: []newsapi.Article{}}
	var failures int

	if summary, err := s.wiki.PageSummary(ctx, company); err == nil {
		rep.Summary = summary.Extract
		rep.Description = summary.Description
		rep.WikiURL = summary.PageURL
	} else {
		failures++
		log.Printf("company research: wikipedia lookup for %q failed: %v", company, err)
	}

	if articles, err := s.news.Headlines(ctx, company, 5); err == nil {
		rep.News = articles
	} else {
		failures++
		log.Printf("company research: news lookup for %q failed: %v", company, err)
	}

	if failures == 2 {
		return CompanyReport{}, ErrUpstream("all research sources failed")
	}
	return rep, nil
}

// ErrValidation signals rejected input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// ErrUpstream signals that external research sources failed.
type ErrUpstream string

func (e ErrUpstream) Error() string { return string(e) }
