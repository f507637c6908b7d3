package application

import (
	"strings"

	"github.com/fixhook/fixhook/internal/domain"
)

// ResolveTarget picks the text to send and the range it will replace.
// It rejects missing selections, blank input and unsupported languages,
// all before anything leaves the process.
func ResolveTarget(doc *domain.Document, scope domain.Scope, sel *domain.Selection) (*domain.Target, error) {
	var rng domain.Range
	switch scope {
	case domain.ScopeFile:
		rng = doc.FullRange()
	case domain.ScopeSelection:
		if sel == nil {
			return nil, domain.NewUserError("no code selected")
		}
		r, err := sel.Resolve(doc)
		if err != nil {
			return nil, err
		}
		if r.IsEmpty() {
			return nil, domain.NewUserError("no code selected")
		}
		rng = r
	default:
		return nil, domain.NewUserError("unknown fix scope " + string(scope))
	}

	text, err := doc.TextIn(rng)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewUserError("empty input: nothing to fix")
	}

	if !domain.IsSupportedLanguage(doc.LanguageID) {
		return nil, domain.NewUnsupportedLanguageError(doc.LanguageID)
	}

	return &domain.Target{Document: doc, Range: rng, Text: text}, nil
}
