package views

import (
	"bytes"
	"io/fs"
	"testing"
	"time"

	"github.com/oliverisaac/jotter/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data *types.PageData) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestEveryPageRenders(t *testing.T) {
	note := types.Note{
		ID:          7,
		Title:       "Recipe",
		Content:     "flour\nwater",
		UserID:      "u1",
		IsPublic:    true,
		CreatedAt:   time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
		AuthorLabel: "a@x.com",
	}
	sess := types.Session{UserID: "u1", Email: "a@x.com"}

	for _, name := range []string{"index", "signin", "signup", "notes", "public", "public-note", "not-found"} {
		t.Run(name, func(t *testing.T) {
			data := types.NewPageData(sess).WithNotes([]types.Note{note}).WithNote(note)
			data.Total = 1
			out := render(t, name, data)
			assert.Contains(t, out, "<html")
			assert.Contains(t, out, "</html>")
		})
	}
}

func TestNotesPageShowsVisibilityAndDate(t *testing.T) {
	data := types.NewPageData(types.Session{UserID: "u1", Email: "a@x.com"}).WithNotes([]types.Note{
		{ID: 1, Title: "Groceries", Content: "milk, eggs", CreatedAt: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Recipe", Content: "flour", IsPublic: true},
	})

	out := render(t, "notes", data)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "Private")
	assert.Contains(t, out, "Public")
	assert.Contains(t, out, "3/9/2024")
	assert.Contains(t, out, `action="/notes/1/delete"`)
}

func TestPublicPageEmptyStates(t *testing.T) {
	out := render(t, "public", types.NewPageData(types.Session{}))
	assert.Contains(t, out, "No Public Notes Yet")

	data := types.NewPageData(types.Session{})
	data.Total = 3
	data.Query = "zebra"
	out = render(t, "public", data)
	assert.Contains(t, out, "No matching notes found")
}

func TestTemplatesEscapeContent(t *testing.T) {
	data := types.NewPageData(types.Session{}).WithNote(types.Note{ID: 1, Title: "<script>x</script>", IsPublic: true})
	out := render(t, "public-note", data)
	assert.NotContains(t, out, "<script>x</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestStaticAssets(t *testing.T) {
	_, err := fs.Stat(Static, "jotter.css")
	assert.NoError(t, err)
}
