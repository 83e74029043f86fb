package lexer

import "fmt"

// Position representa uma posição no arquivo .vm
type Position struct {
	Line   int // Linha no arquivo (a partir de 1)
	Column int // Coluna do primeiro caractere da instrução
}

// String retorna uma representação em string da posição
func (p Position) String() string {
	return fmt.Sprintf("linha %d, coluna %d", p.Line, p.Column)
}

// NovaPosicao cria uma nova posição
func NovaPosicao(linha, coluna int) Position {
	return Position{
		Line:   linha,
		Column: coluna,
	}
}
