package parser

import (
	"fmt"
	"strconv"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorArvore cria representações visuais do programa classificado
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// CriarArvore converte o programa para o formato do treedrawer.
// A raiz é a unidade (nome base); cada comando é um filho.
func (v *VisualizadorArvore) CriarArvore(nomeBase string, comandos []Comando) *tree.Tree {
	arvore := tree.NewTree(tree.NodeString(nomeBase))
	for _, comando := range comandos {
		v.adicionarComando(arvore, comando)
	}
	return arvore
}

// adicionarComando pendura um comando na raiz
func (v *VisualizadorArvore) adicionarComando(raiz *tree.Tree, comando Comando) {
	switch comando.Tipo {
	case C_ARITMETICO:
		// Folha: apenas o operador
		raiz.AddChild(tree.NodeString(comando.Operador.String()))

	case C_PUSH, C_POP:
		// Nó interno: push/pop com segmento e índice como filhos
		no := raiz.AddChild(tree.NodeString(v.rotuloAcesso(comando)))
		no.AddChild(tree.NodeString(comando.Segmento.String()))
		no.AddChild(tree.NodeString(strconv.Itoa(comando.Indice)))

	default:
		raiz.AddChild(tree.NodeString("?"))
	}
}

func (v *VisualizadorArvore) rotuloAcesso(comando Comando) string {
	if comando.Tipo == C_PUSH {
		return "push"
	}
	return "pop"
}

// ImprimirArvore imprime a árvore no console
func (v *VisualizadorArvore) ImprimirArvore(nomeBase string, comandos []Comando) {
	fmt.Println("=== Árvore de Comandos ===")
	fmt.Println(v.CriarArvore(nomeBase, comandos))
	fmt.Println()
}
