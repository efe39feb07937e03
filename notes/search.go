package notes

import (
	"strings"

	"github.com/oliverisaac/jotter/types"
)

// Search keeps the notes whose title or content contains query, ignoring case.
// An empty query keeps everything.
func Search(notes []types.Note, query string) []types.Note {
	if query == "" {
		return append([]types.Note{}, notes...)
	}

	q := strings.ToLower(query)
	ret := []types.Note{}
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			ret = append(ret, n)
		}
	}
	return ret
}
