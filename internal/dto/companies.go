package dto

// IngestRequest is the body of POST /scrape-website.
type IngestRequest struct {
	URL string `json:"url"`
}

// ListRequest is the body of POST /get-companies. Search is accepted for
// forward compatibility; listing is not filtered by it.
type ListRequest struct {
	Search string `json:"search"`
}

// GetRequest is the body of POST /get-company.
type GetRequest struct {
	ID int64 `json:"id"`
}
