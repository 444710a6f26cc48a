package extract

import (
	"regexp"
	"strings"
)

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]+`)

// KeyPoints selects up to maxPoints representative sentences from text by
// even-stride sampling: step = max(1, sentenceCount/maxPoints), taking every
// step-th sentence from index 0. Texts with at most maxPoints sentences come
// back whole and in order. Without any sentence boundary the text is split
// on line breaks and the first maxPoints lines are returned. Blank input
// yields nil.
func KeyPoints(text string, maxPoints int) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || maxPoints <= 0 {
		return nil
	}

	if !strings.ContainsAny(trimmed, ".!?") {
		var lines []string
		for _, line := range strings.Split(trimmed, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lines = append(lines, line)
			if len(lines) == maxPoints {
				break
			}
		}
		return lines
	}

	var sentences []string
	for _, s := range sentenceBoundaryRe.Split(trimmed, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	step := len(sentences) / maxPoints
	if step < 1 {
		step = 1
	}

	points := make([]string, 0, maxPoints)
	for i := 0; i < len(sentences) && len(points) < maxPoints; i += step {
		points = append(points, sentences[i])
	}
	return points
}
