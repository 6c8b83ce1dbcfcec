package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vibe-quiz/internal/schemas"
)

func setValidateFlags(t *testing.T, schema, jsonPath string) {
	t.Helper()
	validateSchema, validateJSON = schema, jsonPath
	t.Cleanup(func() { validateSchema, validateJSON = "", "" })
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuiltinSchema(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"deck", schemas.Deck, true},
		{"deck.schema.json", schemas.Deck, true},
		{"quiz_result", schemas.QuizResult, true},
		{"schemas/other.schema.json", "", false},
	}
	for _, tt := range tests {
		got, ok := builtinSchema(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestValidateCommand_Success(t *testing.T) {
	deck := `{"cards":[{"id":"c1","title":"Puppies","query":"puppies","alt":"Puppies","theme_tags":["animals"],"category":"animals","is_related":true}]}`
	setValidateFlags(t, "deck", writeTemp(t, "deck.json", deck))
	cmd, out, _ := newTestCommand()

	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "Validation passed")
}

func TestValidateCommand_Failure(t *testing.T) {
	setValidateFlags(t, "deck", writeTemp(t, "deck.json", `{"cards":[{"id":"c1"}]}`))
	cmd, _, errOut := newTestCommand()

	require.Error(t, runValidate(cmd, nil))
	assert.Contains(t, errOut.String(), "Validation failed")
}

func TestValidateCommand_SchemaFile(t *testing.T) {
	schema := writeTemp(t, "s.schema.json", `{"type":"object","required":["name"]}`)
	setValidateFlags(t, schema, writeTemp(t, "doc.json", `{"name":"x"}`))
	cmd, out, _ := newTestCommand()

	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "Validation passed")
}

func TestValidateCommand_Stdin(t *testing.T) {
	schema := writeTemp(t, "s.schema.json", `{"type":"object","required":["name"]}`)

	setValidateFlags(t, schema, "-")
	cmd, out, _ := newTestCommand()
	cmd.SetIn(strings.NewReader(`{"name":"x"}`))
	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "Validation passed")

	cmd, _, errOut := newTestCommand()
	cmd.SetIn(strings.NewReader(`{}`))
	require.Error(t, runValidate(cmd, nil))
	assert.Contains(t, errOut.String(), "Validation failed")

	setValidateFlags(t, "quiz_result", "-")
	cmd, _, _ = newTestCommand()
	cmd.SetIn(strings.NewReader(`{"cards":[]}`))
	assert.Error(t, runValidate(cmd, nil))
}
