package model

import "fmt"

// DocumentLink is a present document slot, tagged with its 1-based position
// for display labeling.
type DocumentLink struct {
	Position int
	Label    string
	URL      string
}

// ProfileView is the render-ready shape of a public profile page.
type ProfileView struct {
	Agent     *Agent
	Documents []DocumentLink
}

// NewProfileView assembles the view model: the multi-value fields are
// already lists on the record, so the remaining work is the ordered scan of
// the document slots, keeping only the ones that hold a URL.
func NewProfileView(a *Agent) *ProfileView {
	view := &ProfileView{Agent: a}

	for i, doc := range a.Documents {
		if doc == nil || *doc == "" {
			continue
		}
		view.Documents = append(view.Documents, DocumentLink{
			Position: i + 1,
			Label:    fmt.Sprintf("Document %d", i+1),
			URL:      *doc,
		})
	}

	return view
}
