// Package vcard serializes an agent into a vCard 3.0 document.
//
// The output is deterministic and uses CRLF line endings throughout — a
// strict requirement of contact-import clients, which reject documents
// terminated with bare newlines.
package vcard

import (
	"fmt"
	"strings"

	"agentcard/internal/domains/agent/model"
)

const crlf = "\r\n"

// Serialize produces the vCard document for an agent. Pure: no I/O, same
// input always yields the same bytes.
func Serialize(a *model.Agent) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCARD")
	writeLine(&b, "VERSION:3.0")
	writeLine(&b, "N:"+escape(a.Name)+";;;;")
	writeLine(&b, "FN:"+escape(a.Name))

	if a.Role != "" {
		writeLine(&b, "TITLE:"+escape(a.Role))
	}
	if a.MobilePhone != "" {
		writeLine(&b, "TEL;TYPE=CELL:"+a.MobilePhone)
	}
	if a.OfficePhone != "" {
		writeLine(&b, "TEL;TYPE=WORK:"+a.OfficePhone)
	}
	for _, email := range a.Emails {
		writeLine(&b, "EMAIL;TYPE=WORK:"+email)
	}
	for _, site := range a.Websites {
		writeLine(&b, "URL:"+site)
	}
	if a.Company != "" {
		writeLine(&b, "ORG:"+escape(a.Company))
	}
	if a.VATNumber != "" {
		writeLine(&b, "X-VAT-NUMBER:"+escape(a.VATNumber))
	}
	if a.SDICode != "" {
		writeLine(&b, "X-SDI-CODE:"+escape(a.SDICode))
	}
	if a.VATNumber != "" || a.SDICode != "" {
		note := fmt.Sprintf("Partita IVA: %s - Codice SDI: %s", a.VATNumber, a.SDICode)
		writeLine(&b, "NOTE:"+escape(note))
	}

	writeLine(&b, "END:VCARD")
	return b.String()
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString(crlf)
}

// escape protects the text-value characters vCard 3.0 reserves.
func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
