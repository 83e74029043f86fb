package assembly

import (
	"fmt"

	"github.com/khevencolino/tradutor-vm/internal/backends"
	"github.com/khevencolino/tradutor-vm/internal/backends/assembly/hack"
)

// NewAssemblyBackend cria o gerador de assembly da arquitetura pedida.
// nomeBase prefixa as variáveis static da unidade.
func NewAssemblyBackend(arch, nomeBase string) (backends.Backend, error) {
	switch arch {
	case "hack", "":
		return hack.NewHackBackend(nomeBase), nil
	default:
		return nil, fmt.Errorf("arquitetura assembly não suportada: %s", arch)
	}
}

// Arquiteturas lista as arquiteturas aceitas por NewAssemblyBackend
func Arquiteturas() []string {
	return []string{"hack"}
}
