package ocat

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// LoadCSV reads a comma separated file into a raw string table.
func LoadCSV(filename string) ([][]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	table, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return table, nil
}

var arffAttributePattern = regexp.MustCompile(`(?i)@attribute\s+'([^']+)'|@attribute\s+"([^"]+)"|@attribute\s+(\S+)`)

// ParseARFF extracts attribute names and data rows from an ARFF file.
// Comment and declaration details beyond @attribute and @data are ignored.
func ParseARFF(filename string) ([]string, [][]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	var attributeNames []string
	var table [][]string
	inDataSection := false

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "@attribute"):
			match := arffAttributePattern.FindStringSubmatch(line)
			if match != nil {
				for _, group := range match[1:] {
					if group != "" {
						attributeNames = append(attributeNames, group)
						break
					}
				}
			}
		case strings.HasPrefix(lower, "@data"):
			inDataSection = true
		case inDataSection:
			cells := strings.Split(line, ",")
			for i := range cells {
				cells[i] = strings.TrimSpace(cells[i])
			}
			table = append(table, cells)
		}
	}

	return attributeNames, table, nil
}

// Preprocess sorts the raw table by a column, splits off the trailing label
// column and reports which rows are positive (label "1"). The feature
// columns are parsed as floats.
func Preprocess(table [][]string, sortColumn int, hasHeader bool) ([][]float64, []int, error) {
	if hasHeader {
		if len(table) == 0 {
			return nil, nil, fmt.Errorf("table has no data rows")
		}
		table = table[1:]
	}
	if len(table) == 0 {
		return nil, nil, fmt.Errorf("table has no data rows")
	}

	sorted := make([][]string, len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][sortColumn] < sorted[j][sortColumn]
	})

	var positiveIndices []int
	data := make([][]float64, len(sorted))
	for rowIndex, row := range sorted {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("row %d has too few columns", rowIndex)
		}
		if row[len(row)-1] == "1" {
			positiveIndices = append(positiveIndices, rowIndex)
		}
		features := make([]float64, len(row)-1)
		for colIndex, cell := range row[:len(row)-1] {
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d column %d is not numeric: %w", rowIndex, colIndex, err)
			}
			features[colIndex] = value
		}
		data[rowIndex] = features
	}

	return data, positiveIndices, nil
}
