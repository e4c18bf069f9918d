package obj

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/Faultbox/objmesh/pkg/dataarray"
)

// tokenParser parses one numeric token. It reports false when the token is
// not a number, which ends the scan.
type tokenParser[T any] func(tok string) (T, bool)

// scanNumbers parses numeric tokens from fragment into buf until a token
// fails to parse. Slashes separate tokens like whitespace does. The result
// writes into buf and moves to larger storage if buf fills up.
func scanNumbers[T any](fragment string, buf []T, parse tokenParser[T]) *dataarray.Array[T] {
	out := dataarray.Wrap(buf)
	rest := normalizeDelims(fragment)
	for {
		tok, next := nextToken(rest)
		if tok == "" {
			break
		}
		v, ok := parse(tok)
		if !ok {
			break
		}
		out.Append(v)
		rest = next
	}
	return out
}

func scanFloats(fragment string, buf []float64) *dataarray.Array[float64] {
	return scanNumbers(fragment, buf, parseFloatToken)
}

func scanInts(fragment string, buf []int) *dataarray.Array[int] {
	return scanNumbers(fragment, buf, parseIntToken)
}

func normalizeDelims(s string) string {
	return strings.ReplaceAll(s, "/", " ")
}

func nextToken(s string) (tok, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func parseFloatToken(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		// Out of range values saturate to ±Inf like strtod.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func parseIntToken(tok string) (int, bool) {
	v, err := strconv.ParseInt(tok, 10, 0)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
