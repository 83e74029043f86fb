package lexer

import "fmt"

// TokenType representa o tipo de linha reconhecida
type TokenType int

const (
	ARITHMETIC TokenType = iota // add, sub, neg, eq, gt, lt, and, or, not
	PUSH                        // push <segmento> <índice>
	POP                         // pop <segmento> <índice>
	COMMENT                     // Linha com // em qualquer posição
	BLANK                       // Linha vazia ou só com espaços
	INVALID                     // Linha fora da gramática
)

// String retorna uma representação em string do tipo de token
func (t TokenType) String() string {
	switch t {
	case ARITHMETIC:
		return "ARITHMETIC"
	case PUSH:
		return "PUSH"
	case POP:
		return "POP"
	case COMMENT:
		return "COMMENT"
	case BLANK:
		return "BLANK"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Token representa uma instrução já aparada e validada pela gramática
type Token struct {
	Type     TokenType // Tipo da instrução
	Value    string    // Texto aparado da linha
	Position Position  // Posição no arquivo fonte
}

// String retorna uma representação em string do token
func (t Token) String() string {
	return fmt.Sprintf("%s('%s') em %s", t.Type, t.Value, t.Position)
}

// NovoToken cria um novo token
func NovoToken(tipoToken TokenType, valor string, posicao Position) Token {
	return Token{
		Type:     tipoToken,
		Value:    valor,
		Position: posicao,
	}
}

// EAcessoMemoria verifica se o token é push ou pop
func (t Token) EAcessoMemoria() bool {
	return t.Type == PUSH || t.Type == POP
}

// EIgnorado verifica se a linha não gera instrução
func (t Token) EIgnorado() bool {
	return t.Type == COMMENT || t.Type == BLANK
}
