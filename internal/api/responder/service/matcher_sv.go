package responderService

import (
	"ResponderBot/internal/api/responder"
	"ResponderBot/internal/entity"
	"ResponderBot/pkg/nlp"
)

// IntentMatch is the winning intent for one input, together with the
// pattern that carried it.
type IntentMatch struct {
	Name   string
	Intent entity.Intent
	Match  nlp.MatchResult
}

// FindMatchingIntent scores the input against every intent's pattern
// list and keeps the single best result. Intents are visited in
// document order and only a strictly greater score displaces the
// current best, so equal-scoring intents keep the earliest-seen one.
func (s *responderService) FindMatchingIntent(doc *entity.ResponseDocument, text string) *IntentMatch {
	if text == "" || len(doc.Intents) == 0 {
		return nil
	}

	names := doc.IntentNames()

	var best *IntentMatch
	for _, name := range names {
		intent := doc.Intents[name]

		match := nlp.FindBestMatch(text, intent.Patterns, s.threshold)
		if match == nil {
			continue
		}

		if best == nil || match.Similarity > best.Match.Similarity {
			best = &IntentMatch{
				Name:   name,
				Intent: intent,
				Match:  *match,
			}
		}
	}

	return best
}

// TestMatch runs intent matching without sending anything, reporting the
// matched pattern, similarity and the reply that would have been sent.
func (s *responderService) TestMatch(text string) responder.TestMatchResponse {
	doc := s.Document()

	match := s.FindMatchingIntent(doc, nlp.CleanText(text))
	if match == nil {
		return responder.TestMatchResponse{Matched: false}
	}

	return responder.TestMatchResponse{
		Matched:    true,
		Intent:     match.Name,
		Pattern:    match.Match.Pattern,
		Similarity: match.Match.Similarity,
		Response:   s.generateResponse(doc, match),
	}
}
