package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV_BasicRows(t *testing.T) {
	input := "prompt,completion\nfunction,() => 1\n\"function with a, b parameters\",\"(a, b) => a + b\"\n"

	examples, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}

	if len(examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(examples))
	}
	if examples[0].Prompt != "function" || examples[0].Completion != "() => 1" {
		t.Errorf("unexpected first example: %+v", examples[0])
	}
	if examples[1].Prompt != "function with a, b parameters" {
		t.Errorf("quoted prompt with embedded comma not preserved: %q", examples[1].Prompt)
	}
	if examples[1].Completion != "(a, b) => a + b" {
		t.Errorf("quoted completion not preserved: %q", examples[1].Completion)
	}
}

func TestReadCSV_FirstColumnIsPromptWhateverItsName(t *testing.T) {
	input := "label,completion\nsome prompt,some completion\n"

	examples, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}
	if examples[0].Prompt != "some prompt" {
		t.Errorf("expected first column as prompt, got %q", examples[0].Prompt)
	}
}

func TestReadCSV_LenientShortRows(t *testing.T) {
	input := "prompt,completion\nonly a prompt\nfull,row\n"

	examples, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if len(examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(examples))
	}
	if examples[0].Prompt != "only a prompt" {
		t.Errorf("short row prompt: got %q", examples[0].Prompt)
	}
	if examples[0].Completion != "" {
		t.Errorf("short row completion should be empty, got %q", examples[0].Completion)
	}
}

func TestReadCSV_EmbeddedNewlines(t *testing.T) {
	input := "prompt,completion\n\"multi\nline\",\"a;\nb;\"\n"

	examples, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}
	if examples[0].Prompt != "multi\nline" {
		t.Errorf("embedded newline in prompt not preserved: %q", examples[0].Prompt)
	}
	if examples[0].Completion != "a;\nb;" {
		t.Errorf("embedded newline in completion not preserved: %q", examples[0].Completion)
	}
}

func TestReadCSV_NoCompletionColumn(t *testing.T) {
	input := "prompt,other\np1,o1\n"

	examples, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if examples[0].Completion != "" {
		t.Errorf("expected empty completion without a completion column, got %q", examples[0].Completion)
	}
}

func TestReadCSV_MissingHeader(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestJSONLRoundTrip(t *testing.T) {
	original := []Example{
		{Prompt: "function", Completion: "() => 1"},
		{Prompt: "function with a, b parameters", Completion: "(a, b) => a + b"},
		{Prompt: "multi\nline", Completion: "a \"quoted\" completion"},
	}

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, original); err != nil {
		t.Fatalf("WriteJSONL() error: %v", err)
	}

	// Exactly one line per example.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(original) {
		t.Errorf("expected %d lines, got %d", len(original), len(lines))
	}

	decoded, err := ReadJSONL(&buf)
	if err != nil {
		t.Fatalf("ReadJSONL() error: %v", err)
	}
	if len(decoded) != len(original) {
		t.Fatalf("round trip lost examples: %d != %d", len(decoded), len(original))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("example %d changed in round trip: %+v != %+v", i, decoded[i], original[i])
		}
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "dataset.csv")
	jsonlPath := filepath.Join(dir, "dataset.jsonl")

	csv := "prompt,completion\nfunction,() => 1\nfunction with no parameters,() => 1\n"
	if err := os.WriteFile(csvPath, []byte(csv), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	n, err := ConvertFile(csvPath, jsonlPath)
	if err != nil {
		t.Fatalf("ConvertFile() error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 examples converted, got %d", n)
	}

	f, err := os.Open(jsonlPath)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	examples, err := ReadJSONL(f)
	if err != nil {
		t.Fatalf("ReadJSONL() error: %v", err)
	}
	if len(examples) != 2 {
		t.Fatalf("expected 2 examples in output, got %d", len(examples))
	}
	// Input row order is preserved.
	if examples[0].Prompt != "function" || examples[1].Prompt != "function with no parameters" {
		t.Errorf("row order not preserved: %+v", examples)
	}
}

func TestConvertFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertFile(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.jsonl"))
	if err == nil {
		t.Error("expected error for missing CSV")
	}
}
