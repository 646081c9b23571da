// Package turkish folds Turkish-specific letters down to plain Latin so that
// differently-spelled renditions of the same province name compare equal.
package turkish

import "strings"

// foldTable pins every Turkish special letter, both cases, to its closest
// plain-Latin lowercase equivalent. Both members of the dotted/dotless I
// pair must be in here: unicode-aware lowercasing turns 'İ' into "i̇"
// and 'I' into plain 'i', which would leave the two spellings of the same
// name with different keys.
var foldTable = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'I': 'i',
	'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

// Normalize returns the canonical comparison key for a display name:
// special letters folded first, then lowercased, then surrounding
// whitespace trimmed. Idempotent and total.
func Normalize(name string) string {
	folded := strings.Map(func(r rune) rune {
		if repl, ok := foldTable[r]; ok {
			return repl
		}
		return r
	}, name)

	return strings.TrimSpace(strings.ToLower(folded))
}
