package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadfoundry/directory-api/internal/dto"
	"github.com/leadfoundry/directory-api/internal/repository"
)

// CompaniesHandler exposes the stored directory records.
type CompaniesHandler struct {
	service DirectoryService
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(service DirectoryService) *CompaniesHandler {
	return &CompaniesHandler{service: service}
}

// List handles POST /get-companies requests. The body is optional; a search
// field is accepted but listing is not filtered by it. The response is the
// bare array of records ordered by company name.
func (h *CompaniesHandler) List(c echo.Context) error {
	var req dto.ListRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		log.Printf("list companies: %v", err)
		return Error(c, http.StatusInternalServerError, "failed to fetch companies")
	}

	return c.JSON(http.StatusOK, companies)
}

// Get handles POST /get-company requests and returns the single record
// matching the submitted id.
func (h *CompaniesHandler) Get(c echo.Context) error {
	var req dto.GetRequest
	if err := c.Bind(&req); err != nil || req.ID <= 0 {
		return Error(c, http.StatusBadRequest, "a positive company id is required")
	}

	company, err := h.service.GetCompany(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		log.Printf("get company id=%d: %v", req.ID, err)
		return Error(c, http.StatusInternalServerError, "failed to fetch company")
	}

	return c.JSON(http.StatusOK, company)
}
