package model

import (
	"mime/multipart"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"agentcard/internal/shared/utils"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// AgentForm is the admin create/edit form. Multi-value text inputs arrive as
// single delimited strings (comma-separated emails and websites, one address
// per textarea line) and are split when the form is turned into an Agent.
type AgentForm struct {
	Slug    string `form:"slug"`
	Name    string `form:"name"`
	Company string `form:"company"`
	Role    string `form:"role"`
	Bio     string `form:"bio"`

	MobilePhone string `form:"mobile_phone"`
	OfficePhone string `form:"office_phone"`
	Emails      string `form:"emails"`
	Websites    string `form:"websites"`
	Addresses   string `form:"addresses"`

	Facebook  string `form:"facebook"`
	Instagram string `form:"instagram"`
	LinkedIn  string `form:"linkedin"`
	Twitter   string `form:"twitter"`
	YouTube   string `form:"youtube"`
	TikTok    string `form:"tiktok"`

	PEC       string `form:"pec"`
	VATNumber string `form:"vat_number"`
	SDICode   string `form:"sdi_code"`
}

// Normalize fixes the slug before validation: the submitted slug is
// lowercased with whitespace stripped; a blank slug is derived from the name.
func (f *AgentForm) Normalize() {
	f.Slug = utils.NormalizeSlug(f.Slug)
	if f.Slug == "" {
		f.Slug = utils.GenerateSlug(f.Name)
	}
}

// Validate runs the required-field checks. It expects Normalize to have run.
func (f AgentForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Slug,
			validation.Required.Error("slug is required"),
			validation.Match(slugPattern).Error("slug may only contain lowercase letters, digits and hyphens"),
			validation.Length(1, 100),
		),
		validation.Field(&f.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
	)
}

// ToAgent converts the form into the in-memory record, splitting the
// delimited inputs into lists.
func (f *AgentForm) ToAgent() *Agent {
	return &Agent{
		Slug:        f.Slug,
		Name:        f.Name,
		Company:     f.Company,
		Role:        f.Role,
		Bio:         f.Bio,
		MobilePhone: f.MobilePhone,
		OfficePhone: f.OfficePhone,
		Emails:      utils.SplitList(f.Emails, EmailDelimiter),
		Websites:    utils.SplitList(f.Websites, WebsiteDelimiter),
		Addresses:   utils.SplitList(f.Addresses, AddressDelimiter),
		Facebook:    f.Facebook,
		Instagram:   f.Instagram,
		LinkedIn:    f.LinkedIn,
		Twitter:     f.Twitter,
		YouTube:     f.YouTube,
		TikTok:      f.TikTok,
		PEC:         f.PEC,
		VATNumber:   f.VATNumber,
		SDICode:     f.SDICode,
	}
}

// AgentFiles carries the optional uploads of a create/edit submission. A nil
// header means the input was left empty, which on update preserves the
// previously stored URL for that slot.
type AgentFiles struct {
	Photo     *multipart.FileHeader
	Gallery   []*multipart.FileHeader
	Documents [DocumentSlots]*multipart.FileHeader
}
