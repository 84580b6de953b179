// Package dataset converts a CSV of prompt/completion pairs into the
// newline-delimited JSON format the fine-tuning service consumes.
package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Example is one prompt/completion training pair.
type Example struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

// completionColumn is the header name that supplies the completion field.
// The prompt always comes from the first column, whatever its name.
const completionColumn = "completion"

// ReadCSV parses a CSV dataset with a header row. Parsing is lenient: rows
// may have inconsistent column counts, and quoted fields may contain embedded
// newlines and commas. A row with no completion column yields an empty
// completion rather than being dropped. Row order is preserved; nothing is
// deduplicated or validated.
func ReadCSV(r io.Reader) ([]Example, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parsing csv: missing header row")
	}

	completionIdx := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == completionColumn {
			completionIdx = i
			break
		}
	}

	var examples []Example
	for _, row := range rows[1:] {
		var ex Example
		if len(row) > 0 {
			ex.Prompt = row[0]
		}
		if completionIdx >= 0 && completionIdx < len(row) {
			ex.Completion = row[completionIdx]
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// WriteJSONL writes one compact JSON object per example, in order.
func WriteJSONL(w io.Writer, examples []Example) error {
	enc := json.NewEncoder(w)
	for i, ex := range examples {
		if err := enc.Encode(ex); err != nil {
			return fmt.Errorf("encoding example %d: %w", i, err)
		}
	}
	return nil
}

// ReadJSONL parses a JSONL training file back into examples. Blank lines are
// skipped.
func ReadJSONL(r io.Reader) ([]Example, error) {
	var examples []Example
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var ex Example
		if err := json.Unmarshal([]byte(text), &ex); err != nil {
			return nil, fmt.Errorf("parsing jsonl line %d: %w", line, err)
		}
		examples = append(examples, ex)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading jsonl: %w", err)
	}
	return examples, nil
}

// ConvertFile reads the CSV at csvPath and writes the JSONL training file to
// jsonlPath, returning the number of examples written. The conversion is
// all-or-nothing: any error leaves no partial guarantee about the output.
func ConvertFile(csvPath, jsonlPath string) (int, error) {
	in, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", csvPath, err)
	}
	defer in.Close()

	examples, err := ReadCSV(in)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", csvPath, err)
	}

	out, err := os.Create(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", jsonlPath, err)
	}
	defer out.Close()

	if err := WriteJSONL(out, examples); err != nil {
		return 0, fmt.Errorf("writing %s: %w", jsonlPath, err)
	}
	return len(examples), nil
}
