package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate_JSONJob(t *testing.T) {
	path := writeFile(t, "job.json", `{
		"title": "  SSC CGL 2024  ",
		"organizationId": "11111111-1111-1111-1111-111111111111",
		"applyStartDate": "2024-03-01",
		"applicationFee": {"general": 100, "sc": 0}
	}`)

	stdout, _, err := execute(t, "", "validate", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "SSC CGL 2024", got["title"])
	assert.Equal(t, "active", got["status"])
	assert.Equal(t, "2024-03-01T00:00:00Z", got["applyStartDate"])
	assert.Contains(t, stdout, `"general": 100`)
}

func TestValidate_YAMLAdmitCard(t *testing.T) {
	path := writeFile(t, "card.yaml", `
title: UP Police Constable Admit Card
organizationId: 11111111-1111-1111-1111-111111111111
examDate: 2024-02-17
examShifts:
  - shiftName: Shift 1
    reportingTime: "07:30"
    gateClosingTime: "08:30"
    examTime: 10:00 - 12:00
dynamicFields:
  - label: Documents
    type: text
    value: Carry a photo ID
`)

	stdout, stderr, err := execute(t, "", "validate", "--kind", "admit-card", "--compact", path)
	require.NoError(t, err, stderr)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "draft", got["reviewStatus"])
	assert.Equal(t, "2024-02-17T00:00:00Z", got["examDate"])
	assert.Len(t, got["examShifts"], 1)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(stdout), "\n")+1, "compact output is one line")
}

func TestValidate_ReportsIssues(t *testing.T) {
	path := writeFile(t, "bad.json", `{"organizationId": "nope", "bogusField": 1}`)

	stdout, stderr, err := execute(t, "", "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidRecords)
	assert.Empty(t, stdout)

	assert.Contains(t, stderr, path+": 3 issue(s)")
	assert.Contains(t, stderr, "title: MISSING_REQUIRED_FIELD")
	assert.Contains(t, stderr, "organizationId: INVALID_IDENTIFIER")
	assert.Contains(t, stderr, "bogusField: UNKNOWN_FIELD")
}

func TestValidate_NonObjectRecord(t *testing.T) {
	path := writeFile(t, "list.json", `[1, 2]`)

	_, stderr, err := execute(t, "", "validate", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "(record): INVALID_TYPE")
}

func TestValidate_UpdateModeNeedsID(t *testing.T) {
	path := writeFile(t, "job.json", `{"title": "T", "organizationId": "11111111-1111-1111-1111-111111111111"}`)

	_, _, err := execute(t, "", "validate", path)
	require.NoError(t, err)

	_, stderr, err := execute(t, "", "validate", "--mode", "update", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "id: MISSING_REQUIRED_FIELD")
}

func TestValidate_MixedFilesKeepGoing(t *testing.T) {
	good := writeFile(t, "good.json", `{"title": "Good", "organizationId": "11111111-1111-1111-1111-111111111111"}`)
	bad := writeFile(t, "bad.json", `{`)
	missing := filepath.Join(t.TempDir(), "missing.json")

	stdout, stderr, err := execute(t, "", "validate", good, bad, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Contains(t, stdout, `"title": "Good"`)
	assert.Contains(t, stderr, bad+": parse json")
	assert.Contains(t, stderr, missing+": read record")
}

func TestValidate_Stdin(t *testing.T) {
	stdout, _, err := execute(t,
		`{"title": "From Stdin", "organizationId": "11111111-1111-1111-1111-111111111111"}`,
		"validate", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"title": "From Stdin"`)
}

func TestValidate_BadFlags(t *testing.T) {
	path := writeFile(t, "job.json", `{}`)

	_, _, err := execute(t, "", "validate", "--kind", "exam", path)
	assert.ErrorContains(t, err, `unknown kind "exam"`)

	_, _, err = execute(t, "", "validate", "--mode", "upsert", path)
	assert.ErrorContains(t, err, `unknown mode "upsert"`)

	_, _, err = execute(t, "", "validate")
	assert.Error(t, err)
}

func TestDecodeYAML_NonStringKey(t *testing.T) {
	_, err := decodeYAML([]byte("title: x\nseo:\n  1: one\n"))
	assert.ErrorContains(t, err, "not a string")
}
