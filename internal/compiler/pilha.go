package compiler

import (
	"fmt"

	"github.com/khevencolino/tradutor-vm/internal/parser"
	"github.com/khevencolino/tradutor-vm/internal/registry"
)

// RelatorioPilha resume a profundidade da pilha ao longo de uma unidade,
// supondo que ela começa vazia
type RelatorioPilha struct {
	ProfundidadeMaxima int
	ProfundidadeFinal  int
	Avisos             []string
}

// AnalisadorPilha percorre os comandos acompanhando a profundidade da pilha.
// Underflow não impede a tradução: a unidade pode depender de valores
// empilhados por outra.
type AnalisadorPilha struct {
	registro *registry.RegistroOperadores
}

func NovoAnalisadorPilha(registro *registry.RegistroOperadores) *AnalisadorPilha {
	return &AnalisadorPilha{registro: registro}
}

// Analisar devolve o relatório da sequência de comandos
func (a *AnalisadorPilha) Analisar(comandos []parser.Comando) RelatorioPilha {
	var relatorio RelatorioPilha
	profundidade := 0

	for _, comando := range comandos {
		consome, efeito := a.efeito(comando)

		if profundidade < consome {
			relatorio.Avisos = append(relatorio.Avisos, fmt.Sprintf(
				"linha %d: '%s' consome %d valor(es) com a pilha em %d",
				comando.Linha, comando.Texto, consome, profundidade))
			// Continua como se os valores faltantes existissem
			profundidade = consome
		}

		profundidade += efeito
		if profundidade > relatorio.ProfundidadeMaxima {
			relatorio.ProfundidadeMaxima = profundidade
		}
	}

	relatorio.ProfundidadeFinal = profundidade
	return relatorio
}

// efeito retorna quantos valores o comando consome e a variação da pilha
func (a *AnalisadorPilha) efeito(comando parser.Comando) (int, int) {
	switch comando.Tipo {
	case parser.C_PUSH:
		return 0, 1
	case parser.C_POP:
		return 1, -1
	default:
		assinatura, ok := a.registro.ObterAssinatura(comando.Operador.String())
		if !ok {
			return 0, 0
		}
		return assinatura.Consome, assinatura.EfeitoPilha
	}
}
