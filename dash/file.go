package dash

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/animcharts"
)

// Name returns the name of a data file without its directory and extensions.
func Name(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

// LoadSamples reads the given column of a CSV file. The first row is a header
// and is skipped.
func LoadSamples(file string, col int) ([]float64, error) {
	get := func(row []string) (float64, error) {
		return parseColumn(row, col)
	}
	return loadFile(file, get)
}

// LoadStacks reads two columns of a CSV file as the magnitudes of stacked bars.
func LoadStacks(file string, a, b int) ([]charts.Stack, error) {
	get := func(row []string) (charts.Stack, error) {
		var (
			s   charts.Stack
			err error
		)
		if s.A, err = parseColumn(row, a); err != nil {
			return s, err
		}
		s.B, err = parseColumn(row, b)
		return s, err
	}
	return loadFile(file, get)
}

func loadFile[T any](file string, get func([]string) (T, error)) ([]T, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	list, err := readRows(r, get)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return list, nil
}

func readRows[T any](r io.Reader, get func([]string) (T, error)) ([]T, error) {
	var (
		rs   = csv.NewReader(r)
		list []T
	)
	rs.FieldsPerRecord = -1
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	for line := 2; ; line++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		v, err := get(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		list = append(list, v)
	}
	return list, nil
}

func parseColumn(row []string, col int) (float64, error) {
	if col < 0 || col >= len(row) {
		return 0, fmt.Errorf("column %d out of range (%d columns)", col, len(row))
	}
	str := strings.TrimSpace(row[col])
	if str == "" {
		return 0, nil
	}
	return strconv.ParseFloat(str, 64)
}
