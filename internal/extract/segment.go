package extract

import (
	"strings"
	"unicode/utf8"
)

// Sentences splits a multi-sentence document into independently classifiable
// units on runs of sentence-ending punctuation. Pieces of two characters
// or fewer are discarded. Re-segmenting a single already-segmented sentence
// yields that sentence back.
func Sentences(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var units []string
	for _, s := range sentenceBoundaryRe.Split(content, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > 2 {
			units = append(units, s)
		}
	}
	return units
}
