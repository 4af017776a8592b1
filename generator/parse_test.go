package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `<h2>Why prune in spring</h2><p>Roses respond best to a clean cut.</p>`

func TestExtractArticleFencedJSON(t *testing.T) {
	raw := "```json\n{\"seo_title\": \"Rose Pruning Guide\", \"meta_description\": \"When and how to prune.\"}\n```\n" + sampleBody

	meta, body, err := ExtractArticle(raw)
	require.NoError(t, err)
	assert.Equal(t, "Rose Pruning Guide", meta.SEOTitle)
	assert.Equal(t, "When and how to prune.", meta.MetaDescription)
	assert.Equal(t, sampleBody, body)
}

func TestExtractArticleFencedJSONAnywhere(t *testing.T) {
	// Some outputs put preamble text before the metadata fence.
	raw := "Here is the article you asked for.\n```json\n{\"seo_title\": \"T\", \"meta_description\": \"D\"}\n```\n" + sampleBody

	meta, body, err := ExtractArticle(raw)
	require.NoError(t, err)
	assert.Equal(t, "T", meta.SEOTitle)
	assert.Contains(t, body, "<h2>")
}

func TestExtractArticleLeadingBraces(t *testing.T) {
	// No fence, bare JSON object glued to the front of the HTML. The title
	// contains escaped quotes and braces to exercise the balanced scan.
	raw := `{"seo_title": "The \"Best\" {Guide}", "meta_description": "D"}` + "\n" + sampleBody

	meta, body, err := ExtractArticle(raw)
	require.NoError(t, err)
	assert.Equal(t, `The "Best" {Guide}`, meta.SEOTitle)
	assert.Equal(t, sampleBody, strings.TrimSpace(body))
}

func TestExtractArticleNoMetadata(t *testing.T) {
	meta, body, err := ExtractArticle(sampleBody)
	require.NoError(t, err)
	assert.Empty(t, meta.SEOTitle)
	assert.Empty(t, meta.MetaDescription)
	assert.Equal(t, sampleBody, body)
}

func TestExtractArticleStripsWrappingFences(t *testing.T) {
	raw := "```json\n{\"seo_title\": \"T\", \"meta_description\": \"D\"}\n```\n```html\n" + sampleBody + "\n```"

	_, body, err := ExtractArticle(raw)
	require.NoError(t, err)
	assert.Equal(t, sampleBody, body)
}

func TestExtractArticleRejectsNonHTML(t *testing.T) {
	cases := []string{
		"",
		"Sorry, I cannot write this article.",
		"```json\n{\"seo_title\": \"T\", \"meta_description\": \"D\"}\n```\njust plain text with <b>no</b> structure",
	}
	for _, raw := range cases {
		_, _, err := ExtractArticle(raw)
		if !errors.Is(err, ErrNoStructuralHTML) {
			t.Fatalf("expected ErrNoStructuralHTML for %q, got %v", raw, err)
		}
	}
}

func TestExtractArticleMalformedJSONFallsThrough(t *testing.T) {
	// Broken JSON in the fence: treated as no metadata, body still accepted.
	raw := "```json\n{\"seo_title\": \"T\",}\n```\n" + sampleBody

	meta, body, err := ExtractArticle(raw)
	require.NoError(t, err)
	assert.Empty(t, meta.SEOTitle)
	assert.Contains(t, body, "<h2>")
}
