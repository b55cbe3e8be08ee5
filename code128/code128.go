// Package code128 encodes text as Code 128 Subset B symbols.
//
// Encoding produces the symbol-code sequence (START-B, one code per
// character, a modulo-103 checksum, STOP) and expands it into the flat
// sequence of bar and space module widths a renderer consumes.
package code128

import "fmt"

// Subset B covers printable ASCII.
const (
	minChar = 32
	maxChar = 126
)

// UnsupportedCharacterError reports an input character that cannot be
// encoded in Subset B.
type UnsupportedCharacterError struct {
	// Index is the position of the offending character in the input.
	Index int

	// Char is the offending code point.
	Char rune
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("unsupported character at index %d: code point %d", e.Index, e.Char)
}

// PatternNotFoundError reports a symbol code with no entry in the pattern
// table. It indicates a defect in the encoder, not bad input.
type PatternNotFoundError struct {
	// Code is the out-of-range symbol code.
	Code int
}

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("no pattern for symbol code %d", e.Code)
}

// Validate checks that every character of text lies in the Subset B range.
// It returns an *UnsupportedCharacterError for the first violation.
func Validate(text string) error {
	for i, r := range text {
		if r < minChar || r > maxChar {
			return &UnsupportedCharacterError{Index: i, Char: r}
		}
	}
	return nil
}

// Encode produces the full symbol-code sequence for text: START-B, one
// code per character, the modulo-103 checksum, then STOP. The character at
// 0-based position i contributes value*(i+1) to the checksum accumulator,
// which starts at the START-B value.
func Encode(text string) ([]int, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}

	codes := make([]int, 0, len(text)+3)
	codes = append(codes, startB)
	checksum := startB
	for i := 0; i < len(text); i++ {
		value := int(text[i]) - minChar
		codes = append(codes, value)
		checksum += value * (i + 1)
	}
	codes = append(codes, checksum%checksumModulus)
	codes = append(codes, stop)
	return codes, nil
}

// ExpandModules flattens a symbol-code sequence into bar and space module
// widths, alternating bar/space starting with a bar. Codes outside the
// pattern table yield a *PatternNotFoundError.
func ExpandModules(codes []int) ([]int, error) {
	modules := make([]int, 0, len(codes)*6+1)
	for _, code := range codes {
		if code < 0 || code >= len(patterns) {
			return nil, &PatternNotFoundError{Code: code}
		}
		for _, d := range patterns[code] {
			modules = append(modules, int(d-'0'))
		}
	}
	return modules, nil
}

// EncodeToModules validates and encodes text, returning the flattened
// module-width sequence ready for rendering.
func EncodeToModules(text string) ([]int, error) {
	codes, err := Encode(text)
	if err != nil {
		return nil, err
	}
	return ExpandModules(codes)
}
