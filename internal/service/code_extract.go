package service

import "strings"

// extractFencedCode saca el bloque de codigo de la respuesta del modelo:
// prefiere un fence ```javascript, despues el primer fence generico, y
// si no hay fences devuelve la respuesta cruda. Siempre con trim.
func extractFencedCode(raw string) string {
	if strings.Contains(raw, "```javascript") {
		raw = strings.SplitN(raw, "```javascript", 2)[1]
		raw = strings.SplitN(raw, "```", 2)[0]
	} else if strings.Contains(raw, "```") {
		parts := strings.SplitN(raw, "```", 3)
		if len(parts) >= 2 {
			raw = parts[1]
		}
	}
	return strings.TrimSpace(raw)
}
