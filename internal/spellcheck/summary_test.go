package spellcheck

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter(t *testing.T) {
	result := &Result{
		Errors:        3,
		UnitsChecked:  12,
		MarkupFiles:   1,
		Suppressed:    2,
		UnknownWords:  []string{"adress", "recieve"},
		Warnings:      []Warning{{Package: "example.com/bare", Message: "no markup index file; markup files not checked"}},
		CheckFailures: []CheckFailure{{Unit: "demo.Greeter", Error: "boom"}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&buf, result))
	out := buf.String()
	assert.Contains(t, out, "12 units checked")
	assert.Contains(t, out, "1 markup file checked")
	assert.Contains(t, out, "3 unknown words reported (2 unique)")
	assert.Contains(t, out, "2 suppressed")
	assert.Contains(t, out, "example.com/bare: no markup index")
	assert.Contains(t, out, "demo.Greeter: boom")
	assert.Contains(t, out, "spelling errors")
}

func TestTextFormatterClean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextFormatter{}).Format(&buf, &Result{UnitsChecked: 1}))
	assert.Contains(t, buf.String(), "1 unit checked")
	assert.Contains(t, buf.String(), "No spelling errors found")
	assert.NotContains(t, buf.String(), "suppressed")
}

func TestJSONFormatter(t *testing.T) {
	result := &Result{RunID: "abc", Errors: 1, UnknownWords: []string{"Helllo"}}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter("json").Format(&buf, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abc", decoded["run_id"])
	assert.InDelta(t, 1, decoded["errors"], 0)
	assert.Equal(t, []any{"Helllo"}, decoded["unknown_words"])
	assert.NotContains(t, decoded, "warnings")
}
