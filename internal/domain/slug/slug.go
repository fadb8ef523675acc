// Package slug deriva identificadores URL-safe a partir de nombres legibles.
// Regla: minúsculas, sin acentos, solo [a-z0-9], sin separadores
// ("Maker of Windows OS" -> "makerofwindowsos").
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics descompone (NFD), elimina las marcas diacríticas y
// recompone (NFC): "Compañía" -> "Compania".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make deriva el slug de un nombre. Devuelve cadena vacía si el nombre no
// contiene ningún carácter alfanumérico ASCII tras normalizar.
func Make(name string) string {
	folded, _, err := transform.String(foldDiacritics, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
