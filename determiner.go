package ogpeek

import "strings"

// Determiner is the word that appears before an object's title in a sentence.
type Determiner string

// Determiner values. DeterminerAuto asks the consumer to choose between "a"
// and "an".
const (
	DeterminerA      Determiner = "a"
	DeterminerAn     Determiner = "an"
	DeterminerBlank  Determiner = ""
	DeterminerThe    Determiner = "the"
	DeterminerQuotes Determiner = `"`
	DeterminerAuto   Determiner = "auto"
)

// ParseDeterminer matches s case-insensitively against the known
// determiners. Straight and curly quotation marks all map to DeterminerQuotes.
func ParseDeterminer(s string) (Determiner, bool) {
	switch strings.ToLower(s) {
	case "a":
		return DeterminerA, true
	case "an":
		return DeterminerAn, true
	case "":
		return DeterminerBlank, true
	case "the":
		return DeterminerThe, true
	case `"`, "'", "‘", "’", "“", "”":
		return DeterminerQuotes, true
	case "auto":
		return DeterminerAuto, true
	}
	return "", false
}
