package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/fixhook/fixhook/internal/adapters/inbound/mcp"
)

func TestNewFixhookMCPServer(t *testing.T) {
	s := mcpadapter.NewFixhookMCPServer(".", "test")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewFixhookMCPServer(".", "test")

	tools := s.ListTools()
	require.NotNil(t, tools)

	_, exists := tools["fixhook_fix"]
	assert.True(t, exists, "tool fixhook_fix should be registered")
	assert.Len(t, tools, 1)
}
