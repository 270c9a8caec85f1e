package responderService

import (
	"ResponderBot/internal/entity"
	"fmt"
	"strings"
)

// handleCommand dispatches a "!" prefixed message. The command token is
// case-insensitive; unrecognized commands are silently ignored.
func (s *responderService) handleCommand(doc *entity.ResponseDocument, conversationID, text string) {
	args := strings.Fields(text)
	cmd := strings.ToLower(args[0])

	switch cmd {
	case "!actualizar", "!reload":
		fresh := s.repo.Reload()
		s.swapDocument(fresh)
		s.send(conversationID, "✅ respuestas.json recargado exitosamente!")

	case "!estado", "!status":
		statusText := fmt.Sprintf("📊 Estado del Bot:\n"+
			"├── Intenciones: %d\n"+
			"├── Variables globales: %d\n"+
			"├── Coincidencia mínima: %.0f%%\n"+
			"└── Total patrones: %d",
			len(doc.Intents), len(doc.GlobalVars), s.threshold*100, doc.TotalPatterns())
		s.send(conversationID, statusText)

	case "!ayuda", "!help":
		helpText := "🤖 Comandos disponibles:\n" +
			"├── !actualizar - Recargar respuestas.json\n" +
			"├── !estado - Ver estadísticas del bot\n" +
			"├── !ayuda - Mostrar esta ayuda\n" +
			"├── !test [texto] - Probar coincidencia\n" +
			"└── !debug [on/off] - Modo depuración"
		s.send(conversationID, helpText)

	case "!test":
		testText := strings.Join(args[1:], " ")
		if testText == "" {
			return
		}

		result := s.TestMatch(testText)
		if result.Matched {
			s.send(conversationID, fmt.Sprintf("✅ Coincidencia encontrada:\n"+
				"├── Intención: %s\n"+
				"├── Patrón: \"%s\"\n"+
				"└── Similitud: %.1f%%",
				result.Intent, result.Pattern, result.Similarity*100))
		} else {
			s.send(conversationID, fmt.Sprintf("❌ No se encontró coincidencia para: \"%s\"", testText))
		}

	case "!debug":
		enabled := len(args) > 1 && strings.EqualFold(args[1], "on")
		s.setDebugMode(enabled)

		state := "DESACTIVADO"
		if enabled {
			state = "ACTIVADO"
		}
		s.send(conversationID, "🔧 Modo depuración: "+state)
	}
}

// setDebugMode swaps in a shallow copy with the flag flipped; the
// document snapshot held by any in-flight match stays untouched.
func (s *responderService) setDebugMode(enabled bool) {
	s.docMu.Lock()
	defer s.docMu.Unlock()

	updated := *s.doc
	updated.DebugMode = enabled
	s.doc = &updated
}
