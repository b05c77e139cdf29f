package types

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidOffset is returned when an offset token cannot be parsed.
var ErrInvalidOffset = errors.New("invalid purchase update offset")

// Offset marks progress through the provider's purchase-update stream.
// Its text form is the token itself.
type Offset string

// OffsetBeginning is the cursor before any update has been processed.
const OffsetBeginning Offset = "BEGINNING"

// String returns the text form of the offset.
func (o Offset) String() string { return string(o) }

// IsBeginning reports whether o is the start-of-stream sentinel.
func (o Offset) IsBeginning() bool { return o == OffsetBeginning }

// ParseOffset converts a text token back into an Offset. Blank and non-UTF-8
// tokens are rejected.
func ParseOffset(s string) (Offset, error) {
	if strings.TrimSpace(s) == "" || !utf8.ValidString(s) {
		return "", ErrInvalidOffset
	}
	return Offset(s), nil
}
