package domain_test

import (
	"testing"

	"github.com/fixhook/fixhook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguageID(t *testing.T) {
	cases := map[string]string{
		"app.js":        "javascript",
		"src/App.TSX":   "typescript",
		"main.go":       "go",
		"lib/util.hpp":  "cpp",
		"Program.cs":    "csharp",
		"build.kts":     "kotlin",
		"src/lib.rs":    "rust",
		"Makefile":      "plaintext",
		"notes.unknown": "plaintext",
	}
	for file, want := range cases {
		assert.Equal(t, want, domain.DetectLanguageID(file), file)
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	for _, l := range domain.SupportedLanguages {
		assert.True(t, domain.IsSupportedLanguage(l), l)
	}
	assert.Len(t, domain.SupportedLanguages, 12)
	assert.False(t, domain.IsSupportedLanguage("rust"))
	assert.False(t, domain.IsSupportedLanguage("plaintext"))
	assert.False(t, domain.IsSupportedLanguage("JavaScript"))
}
