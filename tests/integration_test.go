package tests

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapio/recap/api"
	"github.com/recapio/recap/internal/ingest"
	"github.com/recapio/recap/internal/render"
)

// orgDataset is a normalized crawl result: two orgs, repos with
// collaborators, the chain descriptor in-band.
const orgDataset = `{
  "category": "orgs:repos:collaborators",
  "orgs": [
    {
      "name": "alpha",
      "html_url": "https://github.com/alpha",
      "description": "first org",
      "repos": [
        {
          "name": "one",
          "html_url": "https://github.com/alpha/one",
          "collaborators": [
            {"login": "ada"},
            {"login": "grace"}
          ]
        },
        {"name": "two", "collaborators": []}
      ]
    },
    {
      "name": "beta",
      "repos": []
    }
  ]
}`

func loadDataset(t *testing.T) map[string]any {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "orgs.json", []byte(orgDataset), 0o644))
	data, err := ingest.LoadJSON(fs, "orgs.json")
	require.NoError(t, err)
	return data
}

func TestRenderPipeline(t *testing.T) {
	data := loadDataset(t)
	reg, err := render.NewRegistry(render.DefaultFormat, nil)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		out, err := reg.Transform(data, api.Options{})
		require.NoError(t, err)
		assert.Equal(t, "alpha\n  one\n    ada\n    grace\n  two\n\nbeta\n", out)
	})

	t.Run("text with descriptions", func(t *testing.T) {
		out, err := reg.Transform(data, api.Options{Description: true})
		require.NoError(t, err)
		assert.Contains(t, out, "alpha\nfirst org\n")
	})

	t.Run("html is balanced", func(t *testing.T) {
		out, err := reg.Transform(data, api.Options{Format: "html"})
		require.NoError(t, err)
		assert.Equal(t, strings.Count(out, "<ul"), strings.Count(out, "</ul>"))
		assert.Equal(t, strings.Count(out, "<li>"), strings.Count(out, "</li>"))
		assert.Equal(t, 1, strings.Count(out, `<ul id="orgs">`))
		assert.Equal(t, 1, strings.Count(out, `<ul id="repos">`))
		assert.Equal(t, 1, strings.Count(out, `<ul id="collaborators">`))
		// repo "two" and org "beta" have empty child arrays: leaves.
		assert.NotContains(t, out, `<ul id="collaborators"></ul>`)
	})

	t.Run("markdown", func(t *testing.T) {
		out, err := reg.Transform(data, api.Options{Format: "markdown"})
		require.NoError(t, err)
		assert.Contains(t, out, "# [alpha](https://github.com/alpha)\n")
		assert.Contains(t, out, "## [one](https://github.com/alpha/one)\n")
		assert.Contains(t, out, "- ada\n- grace\n")
		assert.Contains(t, out, "- two\n")
	})

	t.Run("json round-trips", func(t *testing.T) {
		out, err := reg.Transform(data, api.Options{Format: "json"})
		require.NoError(t, err)
		back, err := oj.ParseString(out)
		require.NoError(t, err)
		assert.Equal(t, data, back)
	})

	t.Run("active format untouched by overrides", func(t *testing.T) {
		assert.Equal(t, "text", reg.Active())
	})
}

func TestSnapshotRenderPipeline(t *testing.T) {
	path := writeSnapshot(t, "orgs", orgDataset)

	data, err := ingest.LoadRecord(path, "orgs")
	require.NoError(t, err)

	reg, err := render.NewRegistry("markdown", nil)
	require.NoError(t, err)
	out, err := reg.Transform(data, api.Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "- ada\n")
}
