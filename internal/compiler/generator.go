package compiler

import (
	"fmt"

	"github.com/khevencolino/tradutor-vm/internal/backends"
	"github.com/khevencolino/tradutor-vm/internal/backends/assembly"
	"github.com/khevencolino/tradutor-vm/internal/backends/llvm"
)

// NovoGerador cria o gerador de código de uma unidade. Cada unidade recebe
// um gerador novo: o contador de rótulos e as variáveis static não se
// compartilham entre arquivos.
func NovoGerador(backend, arch, nomeBase string) (backends.Backend, error) {
	switch backend {
	case "hack", "assembly", "asm", "":
		return assembly.NewAssemblyBackend(arch, nomeBase)
	case "llvm", "llvmir", "ir":
		return llvm.NewLLVMBackend(nomeBase), nil
	default:
		return nil, fmt.Errorf("backend desconhecido: %s", backend)
	}
}

// ExtensaoSaida retorna a extensão do arquivo gerado pelo backend
func ExtensaoSaida(backend, arch string) (string, error) {
	gerador, err := NovoGerador(backend, arch, "_")
	if err != nil {
		return "", err
	}
	return gerador.GetExtension(), nil
}
