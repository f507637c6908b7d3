package domain_test

import (
	"testing"

	"github.com/fixhook/fixhook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDiagnostics_KeepsSourceOrder(t *testing.T) {
	diags := []domain.Diagnostic{
		{Range: domain.Range{Start: domain.Position{Line: 9}}, Severity: domain.SeverityWarning, Message: "unused variable"},
		{Range: domain.Range{Start: domain.Position{Line: 0}}, Severity: domain.SeverityError, Message: "missing semicolon"},
		{Range: domain.Range{Start: domain.Position{Line: 0}}, Severity: domain.SeverityError, Message: "missing semicolon"},
	}

	assert.Equal(t, []string{
		"Line 10: unused variable (Warning)",
		"Line 1: missing semicolon (Error)",
		"Line 1: missing semicolon (Error)",
	}, domain.FormatDiagnostics(diags))
}

func TestFormatDiagnostics_Empty(t *testing.T) {
	problems := domain.FormatDiagnostics(nil)
	assert.NotNil(t, problems)
	assert.Empty(t, problems)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "Information", domain.SeverityInformation.String())
	assert.Equal(t, "Hint", domain.SeverityHint.String())
	assert.Equal(t, "Severity(7)", domain.Severity(7).String())
}

func TestFormatDiagnostics_MissingSeverityIsError(t *testing.T) {
	diags := []domain.Diagnostic{{Message: "x is not defined"}}
	assert.Equal(t, []string{"Line 1: x is not defined (Error)"}, domain.FormatDiagnostics(diags))
}
