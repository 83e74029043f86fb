package backends

import "github.com/khevencolino/tradutor-vm/internal/parser"

// Backend traduz um comando por vez em texto da máquina alvo.
// O gerador só produz texto: abrir, escrever e fechar o destino é
// responsabilidade de quem chama.
type Backend interface {
	Traduzir(comando parser.Comando) (string, error)
	Finalizar() (string, error)
	GetName() string
	GetExtension() string
}

// Comentador é implementado por backends cujo texto aceita comentários
// por comando
type Comentador interface {
	Comentar(texto string) string
}

// ResultadoTraducao resume a tradução de uma unidade
type ResultadoTraducao struct {
	ArquivoEntrada string
	ArquivoSaida   string
	Comandos       int
	LinhasGeradas  int
	Sucesso        bool
	Message        string
}
