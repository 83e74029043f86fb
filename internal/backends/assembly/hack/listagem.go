package hack

import (
	"strings"

	"github.com/logrusorgru/aurora"
)

// Colorir destaca um bloco Hack para o modo debug: instruções A em azul,
// rótulos em magenta e comentários em verde.
func Colorir(bloco string) string {
	var builder strings.Builder
	for _, linha := range strings.SplitAfter(bloco, "\n") {
		if linha == "" {
			continue
		}
		texto := strings.TrimSuffix(linha, "\n")
		switch {
		case strings.HasPrefix(texto, "//"):
			builder.WriteString(aurora.Green(texto).String())
		case strings.HasPrefix(texto, "@"):
			builder.WriteString(aurora.Blue(texto).String())
		case strings.HasPrefix(texto, "("):
			builder.WriteString(aurora.Magenta(texto).String())
		default:
			builder.WriteString(texto)
		}
		if strings.HasSuffix(linha, "\n") {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
