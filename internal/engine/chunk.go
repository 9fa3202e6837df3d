package engine

import "strings"

// sentenceCutMinFraction is how far into a window the last period must lie
// before it is used as the chunk boundary.
const sentenceCutMinFraction = 0.4

// Chunk splits text into pieces of at most maxChars characters that overlap
// by overlap characters. Each window ends at its last '.' when that period
// lies past 40% of the window; otherwise the window is cut at maxChars.
// Chunks are trimmed and empty chunks dropped. Text that already fits is
// returned as a single untrimmed chunk.
func Chunk(text string, maxChars, overlap int) []string {
	runes := []rune(text)
	if maxChars <= 0 || len(runes) <= maxChars {
		return []string{text}
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChars {
		overlap = maxChars - 1
	}

	var raw []string
	start := 0
	for start < len(runes) {
		end := start + maxChars
		if end >= len(runes) {
			raw = append(raw, string(runes[start:]))
			break
		}

		window := runes[start:end]
		lastPeriod := lastIndexRune(window, '.')

		next := end - overlap
		if lastPeriod != -1 && float64(lastPeriod) > float64(len(window))*sentenceCutMinFraction {
			raw = append(raw, string(runes[start:start+lastPeriod+1]))
			next = start + lastPeriod + 1 - overlap
		} else {
			raw = append(raw, string(window))
		}

		// A large overlap combined with an early sentence cut could move the
		// window backwards.
		if next <= start {
			next = end - overlap
		}
		start = next
	}

	chunks := make([]string, 0, len(raw))
	for _, c := range raw {
		if c = strings.TrimSpace(c); c != "" {
			chunks = append(chunks, c)
		}
	}
	return chunks
}

func lastIndexRune(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
