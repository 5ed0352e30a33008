package entity

import "time"

// Company is one row of the company_information table. Every contact field is
// plain text and defaults to the empty string when the scrape found nothing.
type Company struct {
	ID            int64     `json:"id"`
	CompanyLogo   string    `json:"company_logo"`
	CompanyName   string    `json:"company_name"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	PhoneNumber   string    `json:"phone_number"`
	EmailAddress  string    `json:"email_address"`
	WebsiteURL    string    `json:"website_url"`
	FacebookLink  string    `json:"facebook_link"`
	TwitterLink   string    `json:"twitter_link"`
	LinkedInURL   string    `json:"linkedIn_url"`
	YoutubeLink   string    `json:"youtube_link"`
	InstagramLink string    `json:"instagram_link"`
	CreatedAt     time.Time `json:"created_at"`
}
