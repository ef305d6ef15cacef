package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTOC_HTMLHeadings(t *testing.T) {
	body := `<p>intro</p>
<h1>Overview</h1>
<p>text</p>
<h2 class="sub">Symptoms &amp; Signs</h2>
<h3><strong>When to seek help</strong></h3>
<h4>too deep</h4>`

	toc := ExtractTOC(body)

	assert.Len(t, toc, 3)
	assert.Equal(t, 1, toc[0].Level)
	assert.Equal(t, "Overview", toc[0].Text)
	assert.Equal(t, "overview", toc[0].Slug)
	assert.Equal(t, 2, toc[1].Level)
	assert.Equal(t, 3, toc[2].Level)
	assert.Equal(t, "When to seek help", toc[2].Text)
	assert.Equal(t, "when-to-seek-help", toc[2].Slug)
}

func TestExtractTOC_MarkdownFallback(t *testing.T) {
	body := "# Heart Health\n\nsome text\n\n## Diet\n\n### Salt intake\n\n#### ignored"

	toc := ExtractTOC(body)

	assert.Len(t, toc, 3)
	assert.Equal(t, 1, toc[0].Level)
	assert.Equal(t, "Heart Health", toc[0].Text)
	assert.Equal(t, "heart-health", toc[0].Slug)
	assert.Equal(t, 2, toc[1].Level)
	assert.Equal(t, 3, toc[2].Level)
}

func TestExtractTOC_NoHeadings(t *testing.T) {
	toc := ExtractTOC("<p>just a paragraph</p>")
	assert.Empty(t, toc)
}

func TestExtractTOC_EmptyBody(t *testing.T) {
	assert.Empty(t, ExtractTOC(""))
}
