package fantia

import (
	"strings"

	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

// BodySource tags which of the recognised content-bearing JSON
// shapes a post's body text was extracted from.
type BodySource int

const (
	// Non-empty "comment" fields across the post's content segments
	BodyFromSegments BodySource = iota

	// The top-level "comment" field
	BodyFromComment

	// The top-level "blog_comment" field
	BodyFromBlogComment
)

// PostBody is the extracted text body of a post
// together with the shape it was resolved from.
type PostBody struct {
	Source BodySource
	Text   string
}

// IsPaid reports whether any of the post's content segments
// is gated behind a plan with a price greater than zero.
func (p *FantiaPostDetails) IsPaid() bool {
	for _, content := range p.PostContents {
		if content.Plan != nil && content.Plan.Price > 0 {
			return true
		}
	}
	return false
}

// ExtractBody resolves the post's text body by explicit priority:
// the double-newline-joined segment comments first, then the
// top-level comment, then the top-level blog comment.
//
// Returns fnderrors.ErrNoTextContent if none of the shapes yield text.
func (p *FantiaPostDetails) ExtractBody() (PostBody, error) {
	var segmentTexts []string
	for _, content := range p.PostContents {
		if content.Comment != "" {
			segmentTexts = append(segmentTexts, content.Comment)
		}
	}
	if len(segmentTexts) > 0 {
		return PostBody{
			Source: BodyFromSegments,
			Text:   strings.Join(segmentTexts, "\n\n"),
		}, nil
	}

	if p.Comment != "" {
		return PostBody{
			Source: BodyFromComment,
			Text:   p.Comment,
		}, nil
	}

	if p.BlogComment != "" {
		return PostBody{
			Source: BodyFromBlogComment,
			Text:   p.BlogComment,
		}, nil
	}
	return PostBody{}, fnderrors.ErrNoTextContent
}
