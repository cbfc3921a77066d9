package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxExactInt is the largest magnitude a float64 can hold while still
// representing every integer below it exactly (2^53).
const maxExactInt = 1 << 53

// ParseValues parses numeric tokens into floats. Each token may itself carry
// several values separated by commas or whitespace, so `describe 1,2,3` and
// `describe 1 2 3` both work. The error names the first offending token.
func ParseValues(tokens []string) ([]float64, error) {
	var values []float64
	for _, token := range tokens {
		for _, field := range strings.FieldsFunc(token, isSeparator) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ',', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// ReadValues scans whitespace- or comma-separated numbers from r until EOF.
func ReadValues(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parsed, err := ParseValues([]string{scanner.Text()})
		if err != nil {
			return nil, err
		}
		values = append(values, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return values, nil
}

// AllIntegral reports whether every value is an exactly representable
// integer, and if so returns the integer slice. This decides whether the
// discrete path applies, so integer input gets integer modes back.
func AllIntegral(values []float64) ([]int, bool) {
	ints := make([]int, 0, len(values))
	for _, v := range values {
		if v != math.Trunc(v) || math.Abs(v) > maxExactInt {
			return nil, false
		}
		ints = append(ints, int(v))
	}
	return ints, true
}
