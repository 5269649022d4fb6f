package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans collector-supplied markup before it is stored.
// Titles are reduced to plain text; bodies keep basic user-generated
// formatting with hardened links.
type Sanitizer struct {
	content *bluemonday.Policy
	strict  *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer instance with configured policies.
func NewSanitizer() *Sanitizer {
	// Use UGCPolicy as base (allows p, a, strong, em, etc.)
	p := bluemonday.UGCPolicy()

	// Enforce nofollow and target=_blank on links
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{
		content: p,
		strict:  bluemonday.StrictPolicy(),
	}
}

// SanitizeContent sanitizes a news body, keeping basic formatting.
func (s *Sanitizer) SanitizeContent(html string) string {
	return strings.TrimSpace(s.content.Sanitize(html))
}

// SanitizeTitle strips all markup from a title.
func (s *Sanitizer) SanitizeTitle(html string) string {
	return strings.TrimSpace(s.strict.Sanitize(html))
}
