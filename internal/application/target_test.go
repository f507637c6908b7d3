package application_test

import (
	"testing"

	"github.com/fixhook/fixhook/internal/application"
	"github.com/fixhook/fixhook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget_WholeFile(t *testing.T) {
	doc := &domain.Document{Path: "main.go", LanguageID: "go", Text: "package main\n"}
	target, err := application.ResolveTarget(doc, domain.ScopeFile, nil)
	require.NoError(t, err)
	assert.Equal(t, doc.Text, target.Text)
	assert.Equal(t, doc.FullRange(), target.Range)
}

func TestResolveTarget_Selection(t *testing.T) {
	doc := &domain.Document{Path: "a.js", LanguageID: "javascript", Text: "let a\ncosnole.log(1)\n"}
	target, err := application.ResolveTarget(doc, domain.ScopeSelection, &domain.Selection{StartLine: 2, EndLine: 2})
	require.NoError(t, err)
	assert.Equal(t, "cosnole.log(1)", target.Text)
}

func TestResolveTarget_NoSelection(t *testing.T) {
	doc := &domain.Document{Path: "a.js", LanguageID: "javascript", Text: "x"}
	_, err := application.ResolveTarget(doc, domain.ScopeSelection, nil)
	require.ErrorIs(t, err, domain.ErrUser)
	assert.Contains(t, err.Error(), "no code selected")

	empty := &domain.Range{Start: domain.Position{Character: 1}, End: domain.Position{Character: 1}}
	_, err = application.ResolveTarget(doc, domain.ScopeSelection, &domain.Selection{Range: empty})
	require.ErrorIs(t, err, domain.ErrUser)
	assert.Contains(t, err.Error(), "no code selected")
}

func TestResolveTarget_WhitespaceOnly(t *testing.T) {
	doc := &domain.Document{Path: "a.py", LanguageID: "python", Text: "  \n\t\n"}
	_, err := application.ResolveTarget(doc, domain.ScopeFile, nil)
	require.ErrorIs(t, err, domain.ErrUser)
	assert.Contains(t, err.Error(), "empty input")
}

func TestResolveTarget_UnsupportedLanguage(t *testing.T) {
	doc := &domain.Document{Path: "lib.rs", LanguageID: "rust", Text: "fn main() {}"}
	_, err := application.ResolveTarget(doc, domain.ScopeFile, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}
