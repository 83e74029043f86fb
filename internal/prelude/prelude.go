package prelude

import (
	"fmt"
	"sort"
)

// Nomes dos símbolos predefinidos da máquina Hack usados pelo gerador
const (
	SP   = "SP"
	LCL  = "LCL"
	ARG  = "ARG"
	THIS = "THIS"
	THAT = "THAT"
	R13  = "R13" // Célula de rascunho: valor pendente
	R14  = "R14" // Célula de rascunho: endereço efetivo
)

// Bases fixas dos segmentos de deslocamento fixo
const (
	BaseTemp     = 5
	BasePointer  = 3
	TamanhoTemp  = 8
	TamanhoPtr   = 2
	PrimeiraVar  = 16    // Primeira célula alocada para variáveis (ex.: Foo.3)
	LimiteImedia = 32767 // Maior valor de uma instrução A (@valor)
)

// Prelude contém os símbolos sempre disponíveis no montador Hack
type Prelude struct {
	simbolos map[string]*SimboloPrelude
}

type SimboloPrelude struct {
	Nome      string
	Endereco  int
	Descricao string
}

// NewPrelude cria o prelude padrão com os símbolos da plataforma Hack
func NewPrelude() *Prelude {
	p := &Prelude{
		simbolos: make(map[string]*SimboloPrelude),
	}

	p.adicionar(SP, 0, "ponteiro da pilha")
	p.adicionar(LCL, 1, "base do segmento local")
	p.adicionar(ARG, 2, "base do segmento argument")
	p.adicionar(THIS, 3, "base do segmento this (pointer 0)")
	p.adicionar(THAT, 4, "base do segmento that (pointer 1)")
	for i := 0; i < 16; i++ {
		p.adicionar(fmt.Sprintf("R%d", i), i, "registrador virtual")
	}
	p.adicionar("SCREEN", 16384, "mapa de memória da tela")
	p.adicionar("KBD", 24576, "mapa de memória do teclado")

	return p
}

func (p *Prelude) adicionar(nome string, endereco int, descricao string) {
	p.simbolos[nome] = &SimboloPrelude{Nome: nome, Endereco: endereco, Descricao: descricao}
}

// EhSimboloPrelude verifica se um símbolo é predefinido
func (p *Prelude) EhSimboloPrelude(nome string) bool {
	_, existe := p.simbolos[nome]
	return existe
}

// Endereco retorna o endereço de RAM de um símbolo predefinido
func (p *Prelude) Endereco(nome string) (int, bool) {
	s, ok := p.simbolos[nome]
	if !ok {
		return 0, false
	}
	return s.Endereco, true
}

// ListarSimbolos retorna os nomes ordenados por endereço e nome
func (p *Prelude) ListarSimbolos() []string {
	nomes := make([]string, 0, len(p.simbolos))
	for nome := range p.simbolos {
		nomes = append(nomes, nome)
	}
	sort.Slice(nomes, func(i, j int) bool {
		a, b := p.simbolos[nomes[i]], p.simbolos[nomes[j]]
		if a.Endereco != b.Endereco {
			return a.Endereco < b.Endereco
		}
		return a.Nome < b.Nome
	})
	return nomes
}

// Instância padrão, somente leitura
var Padrao = NewPrelude()
