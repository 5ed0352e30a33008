package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/leadfoundry/directory-api/internal/entity"
	"github.com/leadfoundry/directory-api/internal/extract"
	"github.com/leadfoundry/directory-api/internal/repository"
)

var (
	// ErrInvalidURL rejects input that is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("url must start with http:// or https://")
	// ErrAlreadyExists rejects an ingest whose website URL is already stored.
	ErrAlreadyExists = errors.New("company already exists")
)

var urlPattern = regexp.MustCompile(`^https?://\S+$`)

// Scraper produces an extraction result for a URL.
type Scraper interface {
	Scrape(ctx context.Context, url string) (extract.Result, error)
}

// DirectoryService drives the validate → scrape → normalize → dedup → persist
// flow for new records and the listing of stored ones.
type DirectoryService struct {
	repo    repository.CompaniesRepository
	scraper Scraper
}

// NewDirectoryService creates a new instance of DirectoryService.
func NewDirectoryService(repo repository.CompaniesRepository, scraper Scraper) *DirectoryService {
	return &DirectoryService{repo: repo, scraper: scraper}
}

// Ingest scrapes the URL and stores the extracted record unless one with the
// same website URL (case-insensitive) already exists. Returns the new id.
//
// The existence check and the insert are two autocommitted statements, so two
// concurrent ingests of the same URL can both pass the check. Sequential use
// is assumed.
func (s *DirectoryService) Ingest(ctx context.Context, rawURL string) (int64, error) {
	rawURL = strings.TrimSpace(rawURL)
	if !urlPattern.MatchString(rawURL) {
		return 0, ErrInvalidURL
	}

	result, err := s.scraper.Scrape(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	result = Normalize(result)

	exists, err := s.repo.Exists(ctx, result.WebsiteURL)
	if err != nil {
		return 0, fmt.Errorf("dedup check: %w", err)
	}
	if exists {
		return 0, ErrAlreadyExists
	}

	id, err := s.repo.Insert(ctx, companyFromResult(result))
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListCompanies returns every stored record ordered by company name.
func (s *DirectoryService) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	return s.repo.ListAll(ctx)
}

// GetCompany retrieves one record by id.
func (s *DirectoryService) GetCompany(ctx context.Context, id int64) (*entity.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func companyFromResult(result extract.Result) *entity.Company {
	return &entity.Company{
		CompanyLogo:   result.CompanyLogo,
		CompanyName:   result.CompanyName,
		Description:   result.Description,
		Address:       result.Address,
		PhoneNumber:   result.PhoneNumber,
		EmailAddress:  result.EmailAddress,
		WebsiteURL:    result.WebsiteURL,
		FacebookLink:  result.FacebookLink,
		TwitterLink:   result.TwitterLink,
		LinkedInURL:   result.LinkedInURL,
		YoutubeLink:   result.YoutubeLink,
		InstagramLink: result.InstagramLink,
	}
}
