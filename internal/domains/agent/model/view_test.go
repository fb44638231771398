package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewProfileViewDocumentSlots(t *testing.T) {
	a := &Agent{Slug: "jdoe", Name: "Jane Doe"}
	a.Documents[0] = strPtr("http://files/d1.pdf")
	a.Documents[2] = strPtr("http://files/d3.pdf")
	a.Documents[5] = strPtr("http://files/d6.pdf")

	view := NewProfileView(a)

	require.Len(t, view.Documents, 3)
	assert.Equal(t, 1, view.Documents[0].Position)
	assert.Equal(t, "Document 1", view.Documents[0].Label)
	assert.Equal(t, 3, view.Documents[1].Position)
	assert.Equal(t, "Document 3", view.Documents[1].Label)
	assert.Equal(t, 6, view.Documents[2].Position)
	assert.Equal(t, "http://files/d6.pdf", view.Documents[2].URL)
}

func TestNewProfileViewSkipsEmptySlots(t *testing.T) {
	a := &Agent{Slug: "jdoe", Name: "Jane Doe"}
	a.Documents[1] = strPtr("")

	view := NewProfileView(a)
	assert.Empty(t, view.Documents)
}
