package ish

import (
	"strconv"
	"strings"
)

const (
	// MandatoryLength is the width of the control and mandatory data sections.
	MandatoryLength = 105

	lengthFieldWidth = 4

	additionalMarker = "ADD"
	remarksMarker    = "REM"
	qualityMarker    = "EQD"
	originalMarker   = "QNN"
)

// Tokens is a record split into its sections.
type Tokens struct {
	// Mandatory is the fixed 105-character control and mandatory block.
	Mandatory string
	// Additional is the payload following the ADD marker, trailers included.
	Additional string
	// Trailer holds the remarks and quality sections of a record that has no
	// additional-data section.
	Trailer string
}

// Tokenize validates the declared length of line and splits it into sections.
func Tokenize(line string) (Tokens, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < MandatoryLength {
		return Tokens{}, &DecodeError{Kind: ErrTruncated, Declared: MandatoryLength, Actual: len(line)}
	}

	actual := len(line) - MandatoryLength
	declared, err := strconv.ParseUint(line[:lengthFieldWidth], 10, 32)
	if err != nil {
		return Tokens{}, &DecodeError{Kind: ErrLengthMismatch, Declared: -1, Actual: actual}
	}
	if int(declared) != actual {
		return Tokens{}, &DecodeError{Kind: ErrLengthMismatch, Declared: int(declared), Actual: actual}
	}

	tokens := Tokens{Mandatory: line[:MandatoryLength]}
	rest := line[MandatoryLength:]
	if rest == "" {
		return tokens, nil
	}

	idx := strings.Index(rest, additionalMarker)
	if idx >= 0 && (idx == 0 || idx < firstTrailerMarker(rest)) {
		tokens.Additional = rest[idx+len(additionalMarker):]
		return tokens, nil
	}
	tokens.Trailer = rest
	return tokens, nil
}

// firstTrailerMarker returns the offset of the earliest REM, EQD or QNN
// marker in s, or len(s) when there is none.
func firstTrailerMarker(s string) int {
	first := len(s)
	for _, marker := range []string{remarksMarker, qualityMarker, originalMarker} {
		if i := strings.Index(s, marker); i >= 0 && i < first {
			first = i
		}
	}
	return first
}

func isTrailerMarker(s string) bool {
	return s == remarksMarker || s == qualityMarker || s == originalMarker
}
