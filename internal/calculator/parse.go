package calculator

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"separator-calculator/internal/separator"
)

// numericPrefix matches the longest leading decimal literal, the way a
// browser number field's parseFloat reads user text.
var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseNumber converts user-entered text to a float64. Leading whitespace is
// skipped and trailing garbage ignored; text with no numeric prefix yields NaN
// so the engine shows the bad input instead of a silently coerced zero.
func ParseNumber(text string) float64 {
	m := numericPrefix.FindString(strings.TrimLeftFunc(text, unicode.IsSpace))
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// decodeValue accepts a JSON number, a string to be parsed, or null.
func decodeValue(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return x, nil
	case string:
		return ParseNumber(x), nil
	default:
		return 0, fmt.Errorf("expected a number or a string, got %T", v)
	}
}

// bindInputs fills a typed input record from the raw request values. Fields
// missing from raw are NaN unless useDefaults is set, in which case they take
// the schema default.
func bindInputs[T any](schema separator.Schema[T], raw map[string]any, useDefaults bool) (T, error) {
	var in T
	if useDefaults {
		in = schema.Defaults()
	} else {
		for _, f := range schema {
			*f.Ref(&in) = math.NaN()
		}
	}

	for _, name := range slices.Sorted(maps.Keys(raw)) {
		f, ok := schema.Lookup(name)
		if !ok {
			return in, fmt.Errorf("unknown input %q", name)
		}
		v, err := decodeValue(raw[name])
		if err != nil {
			return in, fmt.Errorf("input %q: %w", name, err)
		}
		*f.Ref(&in) = v
	}

	return in, nil
}
