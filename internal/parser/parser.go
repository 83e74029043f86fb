package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/khevencolino/tradutor-vm/internal/lexer"
	"github.com/khevencolino/tradutor-vm/internal/prelude"
	"github.com/khevencolino/tradutor-vm/internal/utils"
)

var padraoIndice = regexp.MustCompile(`^\d+$`)

// Parser representa o leitor/classificador de instruções com cursor
type Parser struct {
	tokens       []lexer.Token
	posicaoAtual int          // Índice da próxima instrução
	atual        *lexer.Token // Instrução sob o cursor
}

// NovoParser cria um novo parser vazio
func NovoParser() *Parser {
	return &Parser{}
}

// Carregar filtra, apara e valida todas as linhas de uma vez.
// Qualquer linha inválida aborta o carregamento e nada é retido.
func (p *Parser) Carregar(linhas []string) error {
	tokens, err := lexer.NovoLexer(linhas).Tokenizar()
	if err != nil {
		return err
	}

	// Operandos também são validados agora, não durante a tradução
	for _, token := range tokens {
		if _, err := classificarToken(token); err != nil {
			return err
		}
	}

	p.tokens = tokens
	p.posicaoAtual = 0
	p.atual = nil
	return nil
}

// TemMais verifica se ainda há instruções não consumidas
func (p *Parser) TemMais() bool {
	return p.posicaoAtual < len(p.tokens)
}

// Avancar torna a próxima instrução a atual
func (p *Parser) Avancar() error {
	if !p.TemMais() {
		return utils.NovoErro(utils.ERRO_CURSOR_ESGOTADO, "não há mais instruções", 0, "")
	}
	p.atual = &p.tokens[p.posicaoAtual]
	p.posicaoAtual++
	return nil
}

// Classificar deriva o comando da linha atual. É idempotente: a linha é
// reinterpretada a cada chamada e nada é guardado.
func (p *Parser) Classificar() (Comando, error) {
	if p.atual == nil {
		return Comando{}, utils.NovoErro(utils.ERRO_CURSOR_ESGOTADO, "nenhuma instrução atual, chame Avancar", 0, "")
	}
	return classificarToken(*p.atual)
}

// Comandos classifica todas as instruções carregadas sem mover o cursor
func (p *Parser) Comandos() ([]Comando, error) {
	comandos := make([]Comando, 0, len(p.tokens))
	for _, token := range p.tokens {
		comando, err := classificarToken(token)
		if err != nil {
			return nil, err
		}
		comandos = append(comandos, comando)
	}
	return comandos, nil
}

// Tokens retorna as instruções carregadas (para depuração)
func (p *Parser) Tokens() []lexer.Token {
	return p.tokens
}

// classificarToken converte uma linha validada num Comando
func classificarToken(token lexer.Token) (Comando, error) {
	texto := token.Value
	linha := token.Position.Line

	switch token.Type {
	case lexer.ARITHMETIC:
		operador, ok := OperadorDePalavra(texto)
		if !ok {
			return Comando{}, utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "operador desconhecido", linha, texto)
		}
		return Comando{Tipo: C_ARITMETICO, Operador: operador, Texto: texto, Linha: linha}, nil

	case lexer.PUSH, lexer.POP:
		// Uma linha push/pop válida tem exatamente dois espaços
		primeiro := strings.Index(texto, " ")
		ultimo := strings.LastIndex(texto, " ")
		if primeiro < 0 || primeiro == ultimo {
			return Comando{}, utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "esperado segmento e índice", linha, texto)
		}

		segmento, ok := SegmentoDePalavra(texto[primeiro+1 : ultimo])
		if !ok {
			return Comando{}, utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "segmento desconhecido", linha, texto)
		}

		indice, err := analisarIndice(texto[ultimo+1:], segmento, linha, texto)
		if err != nil {
			return Comando{}, err
		}

		tipo := C_PUSH
		if token.Type == lexer.POP {
			tipo = C_POP
		}
		return Comando{Tipo: tipo, Segmento: segmento, Indice: indice, Texto: texto, Linha: linha}, nil

	default:
		return Comando{}, utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "instrução não reconhecida", linha, texto)
	}
}

// analisarIndice valida o operando: decimal, não negativo, codificável e dentro do segmento
func analisarIndice(operando string, segmento Segmento, linha int, texto string) (int, error) {
	if !padraoIndice.MatchString(operando) {
		return 0, utils.NovoErro(utils.ERRO_OPERANDO_MALFORMADO,
			fmt.Sprintf("índice '%s' não é um inteiro não negativo", operando), linha, texto)
	}

	indice, err := strconv.Atoi(operando)
	if err != nil || indice > prelude.LimiteImedia {
		return 0, utils.NovoErro(utils.ERRO_OPERANDO_MALFORMADO,
			fmt.Sprintf("índice '%s' excede %d", operando, prelude.LimiteImedia), linha, texto)
	}

	if indice >= segmento.Tamanho() {
		return 0, utils.NovoErro(utils.ERRO_OPERANDO_MALFORMADO,
			fmt.Sprintf("índice %d fora do segmento %s (0-%d)", indice, segmento, segmento.Tamanho()-1), linha, texto)
	}

	return indice, nil
}
