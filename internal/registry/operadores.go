package registry

import (
	"fmt"
	"sort"
)

// ClasseOperador define como o operador manipula a pilha
type ClasseOperador int

const (
	CLASSE_BINARIO    ClasseOperador = iota // Consome dois operandos, produz um
	CLASSE_UNARIO                           // Opera no topo, profundidade inalterada
	CLASSE_COMPARACAO                       // Binário com resultado verdadeiro (-1) ou falso (0)
)

// String retorna representação em string da classe
func (c ClasseOperador) String() string {
	switch c {
	case CLASSE_BINARIO:
		return "binário"
	case CLASSE_UNARIO:
		return "unário"
	case CLASSE_COMPARACAO:
		return "comparação"
	default:
		return "?"
	}
}

// AssinaturaOperador descreve um operador aritmético/lógico da VM
type AssinaturaOperador struct {
	Nome        string
	Classe      ClasseOperador
	Consome     int // Operandos retirados da pilha
	EfeitoPilha int // Variação líquida da profundidade
	Descricao   string
}

// RegistroOperadores mantém os operadores reconhecidos pelo tradutor
type RegistroOperadores struct {
	operadores map[string]*AssinaturaOperador
}

// NovoRegistroOperadores cria um registro com os nove operadores da VM
func NovoRegistroOperadores() *RegistroOperadores {
	registro := &RegistroOperadores{
		operadores: make(map[string]*AssinaturaOperador),
	}

	registro.registrarOperadoresBasicos()

	return registro
}

// Definições dos operadores padrão
var operadoresPadroes = []AssinaturaOperador{
	{Nome: "add", Classe: CLASSE_BINARIO, Descricao: "x + y"},
	{Nome: "sub", Classe: CLASSE_BINARIO, Descricao: "x - y"},
	{Nome: "neg", Classe: CLASSE_UNARIO, Descricao: "-y"},
	{Nome: "eq", Classe: CLASSE_COMPARACAO, Descricao: "verdadeiro se x == y"},
	{Nome: "gt", Classe: CLASSE_COMPARACAO, Descricao: "verdadeiro se x > y"},
	{Nome: "lt", Classe: CLASSE_COMPARACAO, Descricao: "verdadeiro se x < y"},
	{Nome: "and", Classe: CLASSE_BINARIO, Descricao: "x & y bit a bit"},
	{Nome: "or", Classe: CLASSE_BINARIO, Descricao: "x | y bit a bit"},
	{Nome: "not", Classe: CLASSE_UNARIO, Descricao: "!y bit a bit"},
}

// registrarOperadoresBasicos copia os operadores padrão, derivando o efeito na pilha
func (r *RegistroOperadores) registrarOperadoresBasicos() {
	for _, op := range operadoresPadroes {
		r.RegistrarOperador(op.Nome, op.Classe, op.Descricao)
	}
}

// RegistrarOperador adiciona um operador ao registro
func (r *RegistroOperadores) RegistrarOperador(nome string, classe ClasseOperador, descricao string) {
	assinatura := &AssinaturaOperador{
		Nome:      nome,
		Classe:    classe,
		Descricao: descricao,
	}
	switch classe {
	case CLASSE_UNARIO:
		assinatura.Consome = 1
		assinatura.EfeitoPilha = 0
	default:
		assinatura.Consome = 2
		assinatura.EfeitoPilha = -1
	}
	r.operadores[nome] = assinatura
}

// ObterAssinatura retorna a assinatura de um operador
func (r *RegistroOperadores) ObterAssinatura(nome string) (AssinaturaOperador, bool) {
	op, ok := r.operadores[nome]
	if !ok {
		return AssinaturaOperador{}, false
	}
	return *op, true
}

// EhOperador verifica se a palavra é um operador registrado
func (r *RegistroOperadores) EhOperador(nome string) bool {
	_, existe := r.operadores[nome]
	return existe
}

// ListarOperadores retorna os nomes em ordem alfabética
func (r *RegistroOperadores) ListarOperadores() []string {
	nomes := make([]string, 0, len(r.operadores))
	for nome := range r.operadores {
		nomes = append(nomes, nome)
	}
	sort.Strings(nomes)
	return nomes
}

// Descrever formata uma linha de ajuda para o operador
func (r *RegistroOperadores) Descrever(nome string) string {
	op, ok := r.operadores[nome]
	if !ok {
		return fmt.Sprintf("%-4s ?", nome)
	}
	return fmt.Sprintf("%-4s %-11s %s", op.Nome, op.Classe, op.Descricao)
}

// Instância global do registro
var RegistroGlobal = NovoRegistroOperadores()
