// Package modtext turns free-text item modifiers into canonical keys and values.
package modtext

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Placeholder replaces every number in a canonical key
const Placeholder = 'x'

// Compiled regex patterns for modifier parsing
var (
	// Matches a digit run with an optional single fractional part ("40", "12.5")
	numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

	// Matches decimal numbers only
	decimalPattern = regexp.MustCompile(`\d+\.\d+`)

	// Matches integer digit runs
	integerPattern = regexp.MustCompile(`\d+`)

	// Stray characters left over from list rendering and signed values
	strayCharsPattern = regexp.MustCompile(`['"\[\]+]`)

	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// Clean strips quotes, brackets and plus signs and collapses whitespace
func Clean(raw string) string {
	cleaned := strayCharsPattern.ReplaceAllString(raw, "")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Key replaces every number in text with the placeholder
func Key(text string) string {
	return numberPattern.ReplaceAllString(text, string(Placeholder))
}

// Value extracts the representative magnitude of a modifier.
// Decimal numbers win over integers; ranges average their endpoints.
// Text without any number yields 0.
func Value(text string) float64 {
	if decimals := decimalPattern.FindAllString(text, -1); len(decimals) > 0 {
		return mean(decimals)
	}
	if ints := integerPattern.FindAllString(text, -1); len(ints) > 0 {
		return mean(ints)
	}
	return 0
}

// Normalize cleans raw and returns its canonical key and value
func Normalize(raw string) (string, float64) {
	cleaned := Clean(raw)
	return Key(cleaned), Value(cleaned)
}

// Render substitutes value into every placeholder of key.
// Only an x with no adjacent letter is a placeholder, so words like "maximum" survive.
func Render(key string, value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	runes := []rune(key)

	var b strings.Builder
	for i, r := range runes {
		if r == Placeholder && !letterAt(runes, i-1) && !letterAt(runes, i+1) {
			b.WriteString(formatted)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func letterAt(runes []rune, i int) bool {
	return i >= 0 && i < len(runes) && unicode.IsLetter(runes[i])
}

func mean(numbers []string) float64 {
	var sum float64
	for _, n := range numbers {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			continue
		}
		sum += v
	}
	return sum / float64(len(numbers))
}
