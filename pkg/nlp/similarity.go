package nlp

// Similarity computes the Dice coefficient over character bigrams of the
// two strings: 2*|intersection| / (|bigrams(a)| + |bigrams(b)|). The
// score is always in [0,1] and symmetric. Comparison is case-sensitive on
// whatever casing is passed in.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	aBigrams := bigrams(a)
	bBigrams := bigrams(b)
	if len(aBigrams) == 0 || len(bBigrams) == 0 {
		return 0.0
	}

	counts := make(map[string]int, len(aBigrams))
	for _, bg := range aBigrams {
		counts[bg]++
	}

	intersection := 0
	for _, bg := range bBigrams {
		if counts[bg] > 0 {
			counts[bg]--
			intersection++
		}
	}

	return 2.0 * float64(intersection) / float64(len(aBigrams)+len(bBigrams))
}

func bigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}

	grams := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		grams = append(grams, string(runes[i:i+2]))
	}
	return grams
}

// FindBestMatch scores text against every pattern and returns the highest
// scoring one, provided it reaches the threshold. Ties keep the pattern
// with the lowest index. Returns nil when patterns is empty or nothing
// reaches the threshold.
func FindBestMatch(text string, patterns []string, threshold float64) *MatchResult {
	if text == "" || len(patterns) == 0 {
		return nil
	}

	best := MatchResult{Index: -1}
	for i, pattern := range patterns {
		score := Similarity(text, pattern)
		if best.Index == -1 || score > best.Similarity {
			best = MatchResult{Pattern: pattern, Similarity: score, Index: i}
		}
	}

	if best.Similarity < threshold {
		return nil
	}

	return &best
}
