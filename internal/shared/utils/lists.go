package utils

import "strings"

// SplitList splits a delimited string into trimmed, non-empty elements.
// Every reader of a multi-value column goes through this so the split
// semantics stay identical across the profile page, the vCard and the forms.
func SplitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// JoinList is the storage-side inverse of SplitList.
func JoinList(items []string, sep string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if trimmed := strings.TrimSpace(it); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, sep)
}
