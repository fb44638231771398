package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		want  []string
	}{
		{"two emails with space", "a@x.com, b@y.com", ",", []string{"a@x.com", "b@y.com"}},
		{"single element", "a@x.com", ",", []string{"a@x.com"}},
		{"empty segments dropped", "a,,b,", ",", []string{"a", "b"}},
		{"whitespace only", "   ", ",", nil},
		{"empty string", "", ",", nil},
		{"newline separated", "Via Roma 1\n\nMilano", "\n", []string{"Via Roma 1", "Milano"}},
		{"pipe separated urls", "http://a/1.jpg|http://a/2.jpg", "|", []string{"http://a/1.jpg", "http://a/2.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input, tt.sep))
		})
	}
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "a,b", JoinList([]string{"a", "b"}, ","))
	assert.Equal(t, "a|b", JoinList([]string{" a ", "", "b"}, "|"))
	assert.Equal(t, "", JoinList(nil, ","))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	original := []string{"a@x.com", "b@y.com"}
	assert.Equal(t, original, SplitList(JoinList(original, ","), ","))
}
