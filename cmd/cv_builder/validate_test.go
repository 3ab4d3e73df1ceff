package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

func writeCVFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestRunValidate_ValidFile(t *testing.T) {
	cv := types.Empty()
	cv.PersonalInfo.FullName = "Ada Lovelace"
	data, err := json.Marshal(cv)
	require.NoError(t, err)

	err = runValidate(nil, []string{writeCVFile(t, data)})
	assert.NoError(t, err)
}

func TestRunValidate_SchemaViolation(t *testing.T) {
	path := writeCVFile(t, []byte(`{"skills":[{"id":"s1","percentage":500}]}`))

	err := runValidate(nil, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema violation")
}

func TestRunValidate_MissingFile(t *testing.T) {
	err := runValidate(nil, []string{filepath.Join(t.TempDir(), "absent.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestRunValidate_FieldConstraintViolation(t *testing.T) {
	path := writeCVFile(t, []byte(`{"personalInfo":{"email":"not-an-email"}}`))

	err := runValidate(nil, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field constraints")
}

func TestSuggestedCommands_Registered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "render", "export", "validate"} {
		assert.True(t, names[want], "command %s should be registered", want)
	}
}
