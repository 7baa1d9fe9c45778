package kernel

import (
	"bytes"

	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/internal/util"
)

// DecodingFilter maps one exact byte pattern to a fixed value, e.g. an all-0xFF reading to "invalid".
type DecodingFilter struct {
	match []byte
	value string
}

// NewDecodingFilter creates a filter matching b.
func NewDecodingFilter(b []byte, valueIfMatches string) DecodingFilter {
	return DecodingFilter{match: util.CloneSlice(b, 0), value: valueIfMatches}
}

// NewDecodingFilterFromHex creates a filter matching the bytes of a hex string.
func NewDecodingFilterFromHex(hex, valueIfMatches string) (DecodingFilter, error) {
	b, err := hexutil.HexToBytes(hex)
	if err != nil {
		return DecodingFilter{}, err
	}

	return NewDecodingFilter(b, valueIfMatches), nil
}

// Matches reports whether b equals the filter pattern.
func (f DecodingFilter) Matches(b []byte) bool {
	return bytes.Equal(f.match, b)
}

// MatchesHex reports whether the bytes of a hex string equal the filter pattern.
// Invalid hex never matches.
func (f DecodingFilter) MatchesHex(hex string) bool {
	b, err := hexutil.HexToBytes(hex)
	if err != nil {
		return false
	}

	return f.Matches(b)
}

// Value returns the value reported on a match.
func (f DecodingFilter) Value() string { return f.value }

// Wrap returns a translator that reports the filter value when the input matches
// and otherwise delegates to next.
func (f DecodingFilter) Wrap(title string, next Translator) Translator {
	return func(b []byte) (Rawfield, error) {
		if f.Matches(b) {
			return NewRawfield(b, title, f.value), nil
		}

		return next(b)
	}
}
