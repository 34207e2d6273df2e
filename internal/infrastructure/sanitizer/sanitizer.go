package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

// Service strips HTML from user-supplied content before it is persisted.
// Titles and other plain-text fields lose all markup; ticket bodies and
// block texts keep a small inline formatting subset.
type Service interface {
	Strict(content string) string
	Inline(content string) string
}

type serviceImpl struct {
	strict *bluemonday.Policy
	inline *bluemonday.Policy
}

func New() Service {
	inline := bluemonday.NewPolicy()
	inline.AllowElements("b", "i", "br")

	return &serviceImpl{
		strict: bluemonday.StrictPolicy(),
		inline: inline,
	}
}

func (s *serviceImpl) Strict(content string) string {
	return s.strict.Sanitize(content)
}

func (s *serviceImpl) Inline(content string) string {
	return s.inline.Sanitize(content)
}
