package search

import (
	"strings"
	"time"
	"unicode"
)

// Variant is one selected query from the rotation pool.
type Variant struct {
	Index int    //position in the pool, 0-based
	Text  string //full boolean query
}

// Rotate picks the day's query variant: day of the year modulo the pool
// size. Every run on the same calendar day selects the same variant, and
// pools of up to a year's length get fully visited over consecutive days.
// The pool must be non-empty (config guarantees it).
func Rotate(pool []string, now time.Time) Variant {
	idx := now.YearDay() % len(pool)
	return Variant{Index: idx, Text: pool[idx]}
}

// Label is the query's display form: the first 50 characters, enough to
// identify the rotation in logs and digests without dumping the whole
// boolean expression.
func (v Variant) Label() string {
	runes := []rune(v.Text)
	if len(runes) <= 50 {
		return v.Text
	}
	return string(runes[:50]) + "..."
}

// Keywords flattens the boolean query into its searchable terms: quoted
// phrases kept whole, bare words as-is, operators and parentheses dropped.
// Duplicates are removed case-insensitively, first spelling wins. Feed
// sources match items against this list.
func (v Variant) Keywords() []string {
	var out []string
	seen := map[string]bool{}

	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" || term == "AND" || term == "OR" || term == "NOT" {
			return
		}
		key := strings.ToLower(term)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, term)
	}

	runes := []rune(v.Text)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '"':
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				j++
			}
			add(string(runes[i+1 : j]))
			i = j
		case unicode.IsSpace(r) || r == '(' || r == ')':
			//separator
		default:
			j := i
			for j < len(runes) && !unicode.IsSpace(runes[j]) && runes[j] != '(' && runes[j] != ')' && runes[j] != '"' {
				j++
			}
			add(string(runes[i:j]))
			i = j - 1
		}
	}
	return out
}
