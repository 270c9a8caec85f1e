package nlp

// DefaultSimilarityThreshold is the minimum score an input must reach
// against some pattern before the pattern is considered a match.
const DefaultSimilarityThreshold = 0.6

type MatchResult struct {
	Pattern    string  `json:"pattern"`
	Similarity float64 `json:"similarity"`
	Index      int     `json:"index"`
}
