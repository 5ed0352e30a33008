package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadfoundry/directory-api/internal/entity"
)

// ErrCompanyNotFound is returned when no company matches the lookup criteria.
var ErrCompanyNotFound = errors.New("company not found")

// CompaniesRepository describes persistence operations for the directory.
// Records are insert-only; there is no update or delete.
type CompaniesRepository interface {
	Exists(ctx context.Context, websiteURL string) (bool, error)
	Insert(ctx context.Context, company *entity.Company) (int64, error)
	ListAll(ctx context.Context) ([]entity.Company, error)
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
}

// pgxPool is the subset of pgxpool.Pool the repository uses, kept narrow so
// tests can stub it.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXCompaniesRepository implements CompaniesRepository using pgx.
type PGXCompaniesRepository struct {
	pool pgxPool
}

// NewPGXCompaniesRepository wires a pgx backed repository.
func NewPGXCompaniesRepository(pool *pgxpool.Pool) *PGXCompaniesRepository {
	return &PGXCompaniesRepository{pool: pool}
}

const companyColumns = `id, company_logo, company_name, description, address, phone_number,
        email_address, website_url, facebook_link, twitter_link, linkedin_url,
        youtube_link, instagram_link, created_at`

// Exists reports whether a record with the given website URL is already
// stored, compared case-insensitively.
func (r *PGXCompaniesRepository) Exists(ctx context.Context, websiteURL string) (bool, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM company_information WHERE LOWER(website_url) = LOWER($1))`,
		websiteURL,
	)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check company existence: %w", err)
	}
	return exists, nil
}

// Insert appends one company record. The id is assigned by the database and
// created_at is defaulted by the table.
func (r *PGXCompaniesRepository) Insert(ctx context.Context, company *entity.Company) (int64, error) {
	if company == nil {
		return 0, fmt.Errorf("company payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO company_information (
            company_logo, company_name, description, address, phone_number,
            email_address, website_url, facebook_link, twitter_link,
            linkedin_url, youtube_link, instagram_link
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id`,
		company.CompanyLogo,
		company.CompanyName,
		company.Description,
		company.Address,
		company.PhoneNumber,
		company.EmailAddress,
		company.WebsiteURL,
		company.FacebookLink,
		company.TwitterLink,
		company.LinkedInURL,
		company.YoutubeLink,
		company.InstagramLink,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("insert company: %w", err)
	}
	return id, nil
}

// ListAll returns every stored record ordered by company name.
func (r *PGXCompaniesRepository) ListAll(ctx context.Context) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM company_information ORDER BY company_name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// GetByID retrieves a single record by identifier.
func (r *PGXCompaniesRepository) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM company_information WHERE id = $1`,
		id,
	)

	var company entity.Company
	if err := scanCompany(row, &company); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("query company by id: %w", err)
	}
	return &company, nil
}

func scanCompanies(rows pgx.Rows) ([]entity.Company, error) {
	companies := make([]entity.Company, 0)
	for rows.Next() {
		var company entity.Company
		if err := scanCompany(rows, &company); err != nil {
			return nil, fmt.Errorf("scan company row: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate company rows: %w", err)
	}
	return companies, nil
}

func scanCompany(row pgx.Row, company *entity.Company) error {
	return row.Scan(
		&company.ID,
		&company.CompanyLogo,
		&company.CompanyName,
		&company.Description,
		&company.Address,
		&company.PhoneNumber,
		&company.EmailAddress,
		&company.WebsiteURL,
		&company.FacebookLink,
		&company.TwitterLink,
		&company.LinkedInURL,
		&company.YoutubeLink,
		&company.InstagramLink,
		&company.CreatedAt,
	)
}
