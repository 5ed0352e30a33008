package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/leadfoundry/directory-api/internal/entity"
	"github.com/leadfoundry/directory-api/internal/repository"
	"github.com/leadfoundry/directory-api/internal/scraper"
	"github.com/leadfoundry/directory-api/internal/service"
)

type stubService struct {
	ingestFunc func(ctx context.Context, url string) (int64, error)
	listFunc   func(ctx context.Context) ([]entity.Company, error)
	getFunc    func(ctx context.Context, id int64) (*entity.Company, error)
}

func (s *stubService) Ingest(ctx context.Context, url string) (int64, error) {
	if s.ingestFunc == nil {
		return 0, errors.New("ingest not stubbed")
	}
	return s.ingestFunc(ctx, url)
}

func (s *stubService) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	if s.listFunc == nil {
		return nil, errors.New("list not stubbed")
	}
	return s.listFunc(ctx)
}

func (s *stubService) GetCompany(ctx context.Context, id int64) (*entity.Company, error) {
	if s.getFunc == nil {
		return nil, errors.New("get not stubbed")
	}
	return s.getFunc(ctx, id)
}

func performIngest(t *testing.T, svc DirectoryService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/scrape-website", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewIngestHandler(svc).Ingest(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestIngestHandler_Success(t *testing.T) {
	svc := &stubService{
		ingestFunc: func(ctx context.Context, url string) (int64, error) {
			if url != "https://acme.example" {
				t.Fatalf("unexpected url passed to service: %q", url)
			}
			return 1, nil
		},
	}

	rec := performIngest(t, svc, `{"url":"https://acme.example"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Status || resp.ID != 1 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestIngestHandler_InvalidURL(t *testing.T) {
	svc := &stubService{
		ingestFunc: func(ctx context.Context, url string) (int64, error) {
			return 0, service.ErrInvalidURL
		},
	}

	rec := performIngest(t, svc, `{"url":"not-a-url"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp.Status {
		t.Fatalf("expected status false on failure")
	}
}

func TestIngestHandler_Conflict(t *testing.T) {
	svc := &stubService{
		ingestFunc: func(ctx context.Context, url string) (int64, error) {
			return 0, service.ErrAlreadyExists
		},
	}

	rec := performIngest(t, svc, `{"url":"https://acme.example"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestIngestHandler_ScrapeFailure(t *testing.T) {
	svc := &stubService{
		ingestFunc: func(ctx context.Context, url string) (int64, error) {
			return 0, &scraper.ScrapeError{URL: url, Err: errors.New("net::ERR_NAME_NOT_RESOLVED")}
		},
	}

	rec := performIngest(t, svc, `{"url":"http://unreachable.example"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if strings.Contains(resp.Message, "ERR_NAME_NOT_RESOLVED") {
		t.Fatalf("internal error detail must not leak to the caller: %q", resp.Message)
	}
}

func TestIngestHandler_StoreFailure(t *testing.T) {
	svc := &stubService{
		ingestFunc: func(ctx context.Context, url string) (int64, error) {
			return 0, errors.New("insert company: connection refused")
		},
	}

	rec := performIngest(t, svc, `{"url":"https://acme.example"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func performList(t *testing.T, svc DirectoryService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/get-companies", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewCompaniesHandler(svc).List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestCompaniesHandler_List(t *testing.T) {
	svc := &stubService{
		listFunc: func(ctx context.Context) ([]entity.Company, error) {
			return []entity.Company{
				{ID: 1, CompanyName: "Acme", WebsiteURL: "https://acme.example"},
				{ID: 2, CompanyName: "Zenith", WebsiteURL: "https://zenith.example"},
			}, nil
		},
	}

	rec := performList(t, svc, `{"search":"acme"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var companies []entity.Company
	if err := json.Unmarshal(rec.Body.Bytes(), &companies); err != nil {
		t.Fatalf("expected a bare array, got %q: %v", rec.Body.String(), err)
	}
	if len(companies) != 2 || companies[0].CompanyName != "Acme" {
		t.Fatalf("unexpected listing: %+v", companies)
	}
}

func TestCompaniesHandler_EmptyListing(t *testing.T) {
	svc := &stubService{
		listFunc: func(ctx context.Context) ([]entity.Company, error) {
			return []entity.Company{}, nil
		},
	}

	rec := performList(t, svc, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func performGet(t *testing.T, svc DirectoryService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/get-company", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewCompaniesHandler(svc).Get(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestCompaniesHandler_Get(t *testing.T) {
	svc := &stubService{
		getFunc: func(ctx context.Context, id int64) (*entity.Company, error) {
			if id != 42 {
				t.Fatalf("unexpected id passed to service: %d", id)
			}
			return &entity.Company{ID: 42, CompanyName: "Acme"}, nil
		},
	}

	rec := performGet(t, svc, `{"id":42}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var company entity.Company
	if err := json.Unmarshal(rec.Body.Bytes(), &company); err != nil {
		t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
	}
	if company.ID != 42 || company.CompanyName != "Acme" {
		t.Fatalf("unexpected record: %+v", company)
	}
}

func TestCompaniesHandler_Get_NotFound(t *testing.T) {
	svc := &stubService{
		getFunc: func(ctx context.Context, id int64) (*entity.Company, error) {
			return nil, repository.ErrCompanyNotFound
		},
	}

	rec := performGet(t, svc, `{"id":42}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp.Status {
		t.Fatalf("expected status false on failure")
	}
}

func TestCompaniesHandler_Get_InvalidID(t *testing.T) {
	for _, body := range []string{`{}`, `{"id":0}`, `{"id":-3}`} {
		rec := performGet(t, &stubService{}, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestCompaniesHandler_StoreFailure(t *testing.T) {
	svc := &stubService{
		listFunc: func(ctx context.Context) ([]entity.Company, error) {
			return nil, errors.New("list companies: connection refused")
		},
	}

	rec := performList(t, svc, "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
