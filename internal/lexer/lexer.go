package lexer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/khevencolino/tradutor-vm/internal/registry"
	"github.com/khevencolino/tradutor-vm/internal/utils"
)

// MarcadorComentario suprime a linha inteira em que aparece
const MarcadorComentario = "//"

// Segmentos lista as palavras-chave de segmento aceitas pela gramática
var Segmentos = []string{"constant", "local", "argument", "this", "that", "static", "temp", "pointer"}

// Lexer representa o analisador léxico, linha a linha
type Lexer struct {
	linhas  []string                     // Linhas brutas de entrada
	linha   int                          // Índice da próxima linha a processar
	padroes map[TokenType]*regexp.Regexp // Padrões regex para cada tipo de instrução
	acesso  *regexp.Regexp               // Forma geral de push/pop, para diagnóstico
}

// NovoLexer cria um novo analisador léxico
func NovoLexer(linhas []string) *Lexer {
	lexer := &Lexer{
		linhas: linhas,
	}
	lexer.inicializarPadroes()
	return lexer
}

// inicializarPadroes monta os padrões da gramática
func (l *Lexer) inicializarPadroes() {
	operadores := strings.Join(registry.RegistroGlobal.ListarOperadores(), "|")
	segmentos := strings.Join(Segmentos, "|")

	l.padroes = map[TokenType]*regexp.Regexp{
		ARITHMETIC: regexp.MustCompile(`^(` + operadores + `)$`),           // add, sub, ...
		PUSH:       regexp.MustCompile(`^push (` + segmentos + `) (\S+)$`), // push local 2
		POP:        regexp.MustCompile(`^pop (` + segmentos + `) (\S+)$`),  // pop temp 0
	}
	l.acesso = regexp.MustCompile(`^(push|pop) (` + segmentos + `) \S+$`)
}

// Tokenizar valida todas as linhas e retorna apenas as instruções.
// A validação é completa antes de qualquer tradução: a primeira linha
// inválida aborta tudo.
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token

	for l.temMais() {
		token, err := l.proximoToken()
		if err != nil {
			return nil, err
		}

		// Pula comentários e linhas em branco
		if !token.EIgnorado() {
			tokens = append(tokens, token)
		}
	}

	return tokens, nil
}

// proximoToken classifica a próxima linha bruta
func (l *Lexer) proximoToken() (Token, error) {
	bruta := l.linhas[l.linha]
	l.linha++

	texto := strings.TrimSpace(bruta)
	posicao := NovaPosicao(l.linha, strings.Index(bruta, texto)+1)

	if texto == "" {
		return NovoToken(BLANK, "", posicao), nil
	}
	// Marcador em qualquer posição suprime a linha inteira
	if strings.Contains(texto, MarcadorComentario) {
		return NovoToken(COMMENT, texto, posicao), nil
	}

	// Ordem importa: aritmético, push, pop
	for _, tipoToken := range []TokenType{ARITHMETIC, PUSH, POP} {
		if l.padroes[tipoToken].MatchString(texto) {
			if tipoToken == POP && l.padroes[POP].FindStringSubmatch(texto)[1] == "constant" {
				return NovoToken(INVALID, texto, posicao),
					utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "pop no segmento constant não é permitido", posicao.Line, texto)
			}
			return NovoToken(tipoToken, texto, posicao), nil
		}
	}

	return NovoToken(INVALID, texto, posicao),
		utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, l.descreverFalha(texto), posicao.Line, texto)
}

// descreverFalha escolhe a mensagem mais útil para uma linha inválida
func (l *Lexer) descreverFalha(texto string) string {
	campos := strings.Fields(texto)
	switch {
	case len(campos) == 1:
		return fmt.Sprintf("operador desconhecido '%s'", campos[0])
	case campos[0] != "push" && campos[0] != "pop":
		return fmt.Sprintf("comando desconhecido '%s'", campos[0])
	case len(campos) != 3:
		return fmt.Sprintf("%s espera segmento e índice", campos[0])
	case !l.acesso.MatchString(strings.Join(campos, " ")):
		return fmt.Sprintf("segmento desconhecido '%s'", campos[1])
	default:
		return "campos devem ser separados por exatamente um espaço"
	}
}

// temMais verifica se há mais linhas para processar
func (l *Lexer) temMais() bool {
	return l.linha < len(l.linhas)
}

// ImprimirTokens imprime todos os tokens de forma formatada
func ImprimirTokens(tokens []Token) {
	fmt.Printf("%-12s %-25s %-20s\n", "TIPO", "VALOR", "POSIÇÃO")
	fmt.Println(strings.Repeat("-", 60))

	for _, token := range tokens {
		fmt.Printf("%-12s %-25s %-20s\n", token.Type, token.Value, token.Position)
	}
}
