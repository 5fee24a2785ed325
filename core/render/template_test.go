package render_test

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mvc/core/render"
	"github.com/dmitrymomot/mvc/core/web"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"404.html":        {Data: []byte(`<h1>Not found: {{.viewName}}</h1>`)},
		"users/show.html": {Data: []byte(`<p>{{upper .name}}</p>`)},
		"layout.tmpl":     {Data: []byte(`<main>{{.body}}</main>`)},
		"broken.html":     {Data: []byte(`{{.missing.field}}`)},
	}
}

func TestParseFS(t *testing.T) {
	t.Parallel()

	tmpl, err := render.ParseFS(testFS(), []string{"*.html", "*/*.html"},
		render.WithFuncs(template.FuncMap{"upper": strings.ToUpper}),
	)
	require.NoError(t, err)

	tests := []struct {
		name     string
		view     web.View
		expected string
	}{
		{
			name:     "name_without_extension",
			view:     web.NewView("users/show").With("name", "ann"),
			expected: "<p>ANN</p>",
		},
		{
			name:     "name_with_extension",
			view:     web.NewView("users/show.html").With("name", "bob"),
			expected: "<p>BOB</p>",
		},
		{
			name:     "leading_slash",
			view:     web.NewView("/404").With("viewName", "/missing"),
			expected: "<h1>Not found: /missing</h1>",
		},
		{
			name:     "escapes_model",
			view:     web.NewView("404").With("viewName", "<script>"),
			expected: "<h1>Not found: &lt;script&gt;</h1>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, tmpl.Render(context.Background(), &buf, tt.view))
			assert.Equal(t, tt.expected, buf.String())
		})
	}

	assert.True(t, tmpl.Has("users/show"))
	assert.False(t, tmpl.Has("layout"), "pattern did not include .tmpl files")
}

func TestTemplateViewNotFound(t *testing.T) {
	t.Parallel()

	tmpl, err := render.ParseFS(testFS(), []string{"*.html"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Render(context.Background(), &buf, web.NewView("nope"))
	assert.ErrorIs(t, err, render.ErrViewNotFound)

	err = tmpl.Render(context.Background(), &buf, web.View{})
	assert.ErrorIs(t, err, render.ErrViewNotFound)
}

func TestTemplateExecuteError(t *testing.T) {
	t.Parallel()

	tmpl, err := render.ParseFS(testFS(), []string{"broken.html"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Render(context.Background(), &buf, web.NewView("broken").With("missing", 1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, render.ErrViewNotFound)
}

func TestWithExtension(t *testing.T) {
	t.Parallel()

	tmpl, err := render.ParseFS(testFS(), []string{"*.tmpl"}, render.WithExtension("tmpl"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(context.Background(), &buf, web.NewView("layout").With("body", "x")))
	assert.Equal(t, "<main>x</main>", buf.String())
}

func TestParseFSErrors(t *testing.T) {
	t.Parallel()

	_, err := render.ParseFS(testFS(), []string{"*.txt"})
	assert.ErrorIs(t, err, render.ErrNoTemplates)

	_, err = render.ParseFS(fstest.MapFS{"bad.html": {Data: []byte("{{")}}, []string{"*.html"})
	require.Error(t, err)

	_, err = render.ParseFS(testFS(), []string{"["})
	require.Error(t, err)

	_, err = render.ParseFS(fstest.MapFS{}, []string{"*.html"})
	assert.ErrorIs(t, err, render.ErrNoTemplates)
}

func TestNewTemplate(t *testing.T) {
	t.Parallel()

	_, err := render.NewTemplate(nil)
	assert.ErrorIs(t, err, render.ErrNoTemplates)

	_, err = render.NewTemplate(template.New("unparsed"))
	assert.ErrorIs(t, err, render.ErrNoTemplates)

	parsed := template.Must(template.New("hello.html").Parse(`hi {{.who}}`))
	tmpl, err := render.NewTemplate(parsed)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(context.Background(), &buf, web.NewView("hello").With("who", "there")))
	assert.Equal(t, "hi there", buf.String())
}
