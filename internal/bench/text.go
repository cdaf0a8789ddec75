package bench

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// baseText is the fixed sample sentence each round processes.
const baseText = "The quick brown fox jumps over the lazy dog"

// maxTextLen is the rune count the concatenated output is truncated to.
const maxTextLen = 100

// swapCase inverts the case of alphabetic runes and passes everything
// else through unchanged.
var swapCase = runes.Map(func(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	}
	return r
})

// ProcessText case-inverts the sample sentence iterations times,
// concatenates the rounds, and returns the first 100 runes of the
// result. iterations <= 0 returns the empty string.
func ProcessText(iterations int) string {
	var sb strings.Builder

	for i := 0; i < iterations; i++ {
		s, _, err := transform.String(swapCase, baseText)
		if err != nil {
			// runes.Map cannot fail on valid UTF-8 input.
			panic(err)
		}
		sb.WriteString(s)
	}

	out := []rune(sb.String())
	if len(out) > maxTextLen {
		out = out[:maxTextLen]
	}
	return string(out)
}
