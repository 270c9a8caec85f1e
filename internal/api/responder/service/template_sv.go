package responderService

import (
	"ResponderBot/internal/entity"
	"fmt"
	"regexp"
	"sort"
)

// Render resolves ${name} placeholders in a template. Global variables
// are applied first, then intent-local ones over whatever literal
// placeholders remain, which is the observable two-pass contract of the
// original document format: a name present in both pools is consumed by
// the global pass. Each variable is drawn once per render, so repeated
// placeholders of one name all receive the same value. Placeholders with
// no matching variable, or a variable with an empty list, stay literal.
func (s *responderService) Render(template string, localVars, globalVars map[string][]string) string {
	result := s.applyVariables(template, globalVars)
	result = s.applyVariables(result, localVars)
	return result
}

func (s *responderService) applyVariables(text string, vars map[string][]string) string {
	if len(vars) == 0 {
		return text
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := vars[name]
		if len(values) == 0 {
			continue
		}

		value := values[s.rand.Intn(len(values))]
		re := regexp.MustCompile(`(?i)\$\{` + regexp.QuoteMeta(name) + `\}`)
		text = re.ReplaceAllLiteralString(text, value)
	}

	return text
}

// generateResponse picks one template uniformly at random from the
// intent and renders it against the document's variable pools. When the
// document has debug mode on, the reply carries a diagnostic suffix with
// the matched pattern and similarity percentage.
func (s *responderService) generateResponse(doc *entity.ResponseDocument, match *IntentMatch) string {
	if len(match.Intent.Templates) == 0 {
		return ""
	}

	template := match.Intent.Templates[s.rand.Intn(len(match.Intent.Templates))]
	response := s.Render(template, match.Intent.LocalVars, doc.GlobalVars)

	if doc.DebugMode {
		response += fmt.Sprintf("\n\n[Coincidencia: %.1f%% con \"%s\"]",
			match.Match.Similarity*100, match.Match.Pattern)
	}

	return response
}
