package model

import "time"

// DocumentSlots is the number of positionally fixed document fields.
const DocumentSlots = 6

// Delimiters used by the storage layer for multi-value columns. The gallery
// delimiter is deliberately neither comma nor newline: pipes never appear
// unencoded inside URLs.
const (
	EmailDelimiter   = ","
	WebsiteDelimiter = ","
	AddressDelimiter = "\n"
	GalleryDelimiter = "|"
)

// Agent is the sole entity of the system: one contact profile, keyed by its
// slug. Multi-value fields are genuine lists in memory; joining them into
// delimited strings happens only at the storage boundary.
type Agent struct {
	// Slug is the unique, normalized public identifier. It is immutable
	// after creation — renaming it would silently break every distributed
	// link, QR code and printed card pointing at the profile.
	Slug string `json:"slug"`

	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
	Bio     string `json:"bio,omitempty"`

	MobilePhone string   `json:"mobile_phone,omitempty"`
	OfficePhone string   `json:"office_phone,omitempty"`
	Emails      []string `json:"emails,omitempty"`
	Websites    []string `json:"websites,omitempty"`
	Addresses   []string `json:"addresses,omitempty"`

	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`

	// Italian fiscal fields: certified email, VAT number, invoicing
	// routing code.
	PEC       string `json:"pec,omitempty"`
	VATNumber string `json:"vat_number,omitempty"`
	SDICode   string `json:"sdi_code,omitempty"`

	PhotoURL    *string                `json:"photo_url,omitempty"`
	GalleryURLs []string               `json:"gallery_urls,omitempty"`
	Documents   [DocumentSlots]*string `json:"documents"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
