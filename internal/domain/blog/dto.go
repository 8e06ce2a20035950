package blog

import "strings"

// SummaryLength is the number of characters of content kept in a derived
// summary.
const SummaryLength = 150

type CreateBlogInput struct {
	Title     string  `json:"title" validate:"required,max=255"`
	Content   string  `json:"content" validate:"required"`
	Summary   *string `json:"summary"`
	ImageURL  *string `json:"image_url" validate:"omitempty,url"`
	AuthorID  *uint   `json:"author_id" validate:"omitempty,gt=0"`
	Published *bool   `json:"published"`
}

type UpdateBlogInput struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content   *string `json:"content" validate:"omitempty,min=1"`
	Summary   *string `json:"summary"`
	ImageURL  *string `json:"image_url" validate:"omitempty,url"`
	Published *bool   `json:"published"`
}

// DeriveSummary returns the first SummaryLength runes of content followed by
// an ellipsis.
func DeriveSummary(content string) string {
	runes := []rune(content)
	if len(runes) > SummaryLength {
		runes = runes[:SummaryLength]
	}
	return string(runes) + "..."
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Normalize builds the row to insert for authorID.
func (in CreateBlogInput) Normalize(authorID uint) *Blog {
	b := &Blog{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		AuthorID: authorID,
	}
	if blank(in.Summary) {
		b.Summary = DeriveSummary(in.Content)
	} else {
		b.Summary = *in.Summary
	}
	if in.Published != nil {
		b.Published = *in.Published
	}
	return b
}

// Changes maps the set fields to column updates. A content change without
// an explicit summary re-derives the summary.
func (in UpdateBlogInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Content != nil {
		changes["content"] = *in.Content
	}
	switch {
	case !blank(in.Summary):
		changes["summary"] = *in.Summary
	case in.Content != nil:
		changes["summary"] = DeriveSummary(*in.Content)
	}
	if in.ImageURL != nil {
		changes["image_url"] = *in.ImageURL
	}
	if in.Published != nil {
		changes["published"] = *in.Published
	}
	return changes
}
