// Package translit derives machine friendly codes from human field titles.
package translit

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

var args = pinyin.NewArgs()

// Code converts a title into a lower-case pinyin code joined by '_'.
//
// Every Han character becomes one toneless syllable, consecutive letters and digits
// are kept together as one token and everything else separates tokens.
// For example "累计流量" becomes "lei_ji_liu_liang" and "电压V1" becomes "dian_ya_V1".
func Code(title string) string {
	tokens := make([]string, 0, len(title))
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for _, r := range title {
		if unicode.Is(unicode.Han, r) {
			if py := pinyin.SinglePinyin(r, args); len(py) > 0 && py[0] != "" {
				flush()
				tokens = append(tokens, py[0])

				continue
			}
		}

		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			buf.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return strings.Join(tokens, "_")
}
