package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer_SanitizeContent(t *testing.T) {
	s := NewSanitizer()

	t.Run("should keep basic formatting", func(t *testing.T) {
		out := s.SanitizeContent("<p>Markets <strong>rallied</strong> today.</p>")
		assert.Equal(t, "<p>Markets <strong>rallied</strong> today.</p>", out)
	})

	t.Run("should strip script tags", func(t *testing.T) {
		out := s.SanitizeContent(`<p>hello</p><script>alert("x")</script>`)
		assert.Equal(t, "<p>hello</p>", out)
	})

	t.Run("should harden links", func(t *testing.T) {
		out := s.SanitizeContent(`<a href="https://example.com">src</a>`)
		assert.Contains(t, out, `rel="nofollow`)
		assert.Contains(t, out, `target="_blank"`)
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		out := s.SanitizeContent("  plain text \n")
		assert.Equal(t, "plain text", out)
	})
}

func TestSanitizer_SanitizeTitle(t *testing.T) {
	s := NewSanitizer()

	t.Run("should strip all markup", func(t *testing.T) {
		out := s.SanitizeTitle("<b>Breaking</b>: <i>storm</i> hits coast")
		assert.Equal(t, "Breaking: storm hits coast", out)
	})

	t.Run("should drop embedded scripts entirely", func(t *testing.T) {
		out := s.SanitizeTitle(`Title<script>alert("x")</script>`)
		assert.Equal(t, "Title", out)
	})
}
