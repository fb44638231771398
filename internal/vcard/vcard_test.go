package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentcard/internal/domains/agent/model"
)

func TestSerializeFullAgent(t *testing.T) {
	a := &model.Agent{
		Slug:        "jdoe",
		Name:        "Jane Doe",
		Company:     "ACME",
		Role:        "Sales Director",
		MobilePhone: "+393331234567",
		OfficePhone: "+390212345678",
		Emails:      []string{"jane@co.com", "sales@co.com"},
		Websites:    []string{"https://co.com", "https://blog.co.com"},
		VATNumber:   "IT01234567890",
		SDICode:     "ABC1234",
	}

	doc := Serialize(a)
	lines := strings.Split(strings.TrimSuffix(doc, "\r\n"), "\r\n")

	want := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Jane Doe;;;;",
		"FN:Jane Doe",
		"TITLE:Sales Director",
		"TEL;TYPE=CELL:+393331234567",
		"TEL;TYPE=WORK:+390212345678",
		"EMAIL;TYPE=WORK:jane@co.com",
		"EMAIL;TYPE=WORK:sales@co.com",
		"URL:https://co.com",
		"URL:https://blog.co.com",
		"ORG:ACME",
		"X-VAT-NUMBER:IT01234567890",
		"X-SDI-CODE:ABC1234",
		"NOTE:Partita IVA: IT01234567890 - Codice SDI: ABC1234",
		"END:VCARD",
	}
	assert.Equal(t, want, lines)
}

func TestSerializeUsesCRLF(t *testing.T) {
	a := &model.Agent{Slug: "jdoe", Name: "Jane Doe", Emails: []string{"jane@co.com"}}
	doc := Serialize(a)

	require.True(t, strings.HasSuffix(doc, "END:VCARD\r\n"))
	assert.Contains(t, doc, "FN:Jane Doe\r\n")
	assert.Contains(t, doc, "EMAIL;TYPE=WORK:jane@co.com\r\n")
	// No bare newlines: every \n is preceded by \r.
	assert.Equal(t, strings.Count(doc, "\n"), strings.Count(doc, "\r\n"))
}

func TestSerializeOmitsEmptyFields(t *testing.T) {
	a := &model.Agent{Slug: "min", Name: "Minimal"}
	doc := Serialize(a)

	assert.NotContains(t, doc, "TITLE:")
	assert.NotContains(t, doc, "TEL;")
	assert.NotContains(t, doc, "EMAIL;")
	assert.NotContains(t, doc, "URL:")
	assert.NotContains(t, doc, "ORG:")
	assert.NotContains(t, doc, "X-VAT-NUMBER:")
	assert.NotContains(t, doc, "X-SDI-CODE:")
	assert.NotContains(t, doc, "NOTE:")
}

func TestSerializeNoteWithOnlyVAT(t *testing.T) {
	a := &model.Agent{Slug: "v", Name: "V", VATNumber: "IT999"}
	doc := Serialize(a)

	assert.Contains(t, doc, "X-VAT-NUMBER:IT999\r\n")
	assert.NotContains(t, doc, "X-SDI-CODE:")
	assert.Contains(t, doc, "NOTE:Partita IVA: IT999 - Codice SDI: \r\n")
}

func TestSerializeEscapesReservedCharacters(t *testing.T) {
	a := &model.Agent{Slug: "x", Name: "Doe, Jane; Esq.", Company: "A;B"}
	doc := Serialize(a)

	assert.Contains(t, doc, `FN:Doe\, Jane\; Esq.`)
	assert.Contains(t, doc, `ORG:A\;B`)
}

func TestSerializeIsDeterministic(t *testing.T) {
	a := &model.Agent{
		Slug:   "jdoe",
		Name:   "Jane Doe",
		Emails: []string{"jane@co.com", "sales@co.com"},
	}
	assert.Equal(t, Serialize(a), Serialize(a))
}
