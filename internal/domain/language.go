package domain

import (
	"path/filepath"
	"strings"
)

// SupportedLanguages is the fixed allow-list of language identifiers the fix service accepts.
var SupportedLanguages = []string{
	"javascript", "typescript", "python", "java", "cpp", "c",
	"go", "php", "csharp", "ruby", "swift", "kotlin",
}

// IsSupportedLanguage reports whether id is in SupportedLanguages.
func IsSupportedLanguage(id string) bool {
	for _, l := range SupportedLanguages {
		if l == id {
			return true
		}
	}
	return false
}

var extensionLanguages = map[string]string{
	".js": "javascript", ".jsx": "javascript", ".mjs": "javascript", ".cjs": "javascript",
	".ts": "typescript", ".tsx": "typescript", ".mts": "typescript", ".cts": "typescript",
	".py": "python", ".pyw": "python",
	".java": "java",
	".cpp": "cpp", ".cc": "cpp", ".cxx": "cpp", ".hpp": "cpp", ".hh": "cpp", ".hxx": "cpp",
	".c": "c", ".h": "c",
	".go":    "go",
	".php":   "php",
	".cs":    "csharp",
	".rb":    "ruby",
	".swift": "swift",
	".kt":    "kotlin", ".kts": "kotlin",
	".rs":   "rust",
	".lua":  "lua",
	".md":   "markdown",
	".json": "json",
	".yaml": "yaml", ".yml": "yaml",
	".html": "html",
	".css":  "css",
	".sh":   "shellscript",
}

// DetectLanguageID maps a filename to an editor language identifier.
// Unknown extensions yield "plaintext".
func DetectLanguageID(filename string) string {
	if id, ok := extensionLanguages[strings.ToLower(filepath.Ext(filename))]; ok {
		return id
	}
	return "plaintext"
}
