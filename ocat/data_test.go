package ocat

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadCSV(t *testing.T) {
	filename := writeTempFile(t, "data.csv", "age,label\n34,0\n52,1\n")
	table, err := LoadCSV(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 3 {
		t.Fatalf("got %d rows, want 3", len(table))
	}
	if table[2][0] != "52" || table[2][1] != "1" {
		t.Errorf("got row %v, want [52 1]", table[2])
	}

	if _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseARFF(t *testing.T) {
	content := `% toy dataset
@relation screening
@attribute 'age' numeric
@attribute "systolic pressure" numeric
@attribute label {0,1}
@data
34, 118, 0
52, 139, 1
`
	filename := writeTempFile(t, "data.arff", content)
	names, table, err := ParseARFF(filename)
	if err != nil {
		t.Fatal(err)
	}

	wantNames := []string{"age", "systolic pressure", "label"}
	if len(names) != len(wantNames) {
		t.Fatalf("got %d attributes, want %d: %v", len(names), len(wantNames), names)
	}
	for i := range wantNames {
		if names[i] != wantNames[i] {
			t.Errorf("attribute %d: got %q, want %q", i, names[i], wantNames[i])
		}
	}

	if len(table) != 2 {
		t.Fatalf("got %d data rows, want 2", len(table))
	}
	if table[1][0] != "52" || table[1][2] != "1" {
		t.Errorf("got row %v, want [52 139 1]", table[1])
	}
}

func TestPreprocess(t *testing.T) {
	table := [][]string{
		{"age", "label"},
		{"52", "1"},
		{"34", "0"},
		{"47", "1"},
	}
	data, positiveIndices, err := Preprocess(table, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 3 {
		t.Fatalf("got %d rows, want 3", len(data))
	}
	// Sorted by the age column as strings: 34, 47, 52.
	if data[0][0] != 34 || data[1][0] != 47 || data[2][0] != 52 {
		t.Errorf("rows not sorted by column 0: %v", data)
	}
	if len(positiveIndices) != 2 || positiveIndices[0] != 1 || positiveIndices[1] != 2 {
		t.Errorf("got positive indices %v, want [1 2]", positiveIndices)
	}
}

func TestPreprocessErrors(t *testing.T) {
	if _, _, err := Preprocess([][]string{{"h"}}, 0, true); err == nil {
		t.Error("expected an error for a header-only table")
	}
	if _, _, err := Preprocess([][]string{{"abc", "1"}}, 0, false); err == nil {
		t.Error("expected an error for a non-numeric feature")
	}
}
