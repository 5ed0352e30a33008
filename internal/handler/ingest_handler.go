package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadfoundry/directory-api/internal/dto"
	"github.com/leadfoundry/directory-api/internal/entity"
	"github.com/leadfoundry/directory-api/internal/scraper"
	"github.com/leadfoundry/directory-api/internal/service"
)

// DirectoryService is the slice of the service layer the handlers depend on.
type DirectoryService interface {
	Ingest(ctx context.Context, url string) (int64, error)
	ListCompanies(ctx context.Context) ([]entity.Company, error)
	GetCompany(ctx context.Context, id int64) (*entity.Company, error)
}

// IngestHandler scrapes a submitted URL and stores the resulting record.
type IngestHandler struct {
	service DirectoryService
}

// NewIngestHandler creates a new handler instance.
func NewIngestHandler(service DirectoryService) *IngestHandler {
	return &IngestHandler{service: service}
}

// Ingest handles POST /scrape-website requests.
func (h *IngestHandler) Ingest(c echo.Context) error {
	var req dto.IngestRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.Ingest(c.Request().Context(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL):
			return Error(c, http.StatusBadRequest, "a valid http(s) url is required")
		case errors.Is(err, service.ErrAlreadyExists):
			return Error(c, http.StatusConflict, "company already exists")
		}

		var scrapeErr *scraper.ScrapeError
		if errors.As(err, &scrapeErr) {
			log.Printf("ingest: scrape failed url=%s: %v", req.URL, err)
			return Error(c, http.StatusInternalServerError, "failed to scrape website")
		}

		log.Printf("ingest: save failed url=%s: %v", req.URL, err)
		return Error(c, http.StatusInternalServerError, "failed to save company information")
	}

	return Created(c, "company information saved", id)
}
