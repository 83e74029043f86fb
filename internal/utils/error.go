package utils

import (
	"errors"
	"fmt"
	"strings"
)

// TipoErro classifica os erros do tradutor
type TipoErro int

const (
	ERRO_INSTRUCAO_MALFORMADA   TipoErro = iota // Linha não casa com a gramática
	ERRO_OPERANDO_MALFORMADO                    // Índice não é inteiro não negativo válido
	ERRO_SEGMENTO_NAO_SUPORTADO                 // Combinação segmento/índice fora do domínio
	ERRO_CURSOR_ESGOTADO                        // Cursor do parser sem instrução atual
	ERRO_ES                                     // Falha de leitura ou escrita
)

// String retorna o nome do tipo de erro
func (t TipoErro) String() string {
	switch t {
	case ERRO_INSTRUCAO_MALFORMADA:
		return "instrução malformada"
	case ERRO_OPERANDO_MALFORMADO:
		return "operando malformado"
	case ERRO_SEGMENTO_NAO_SUPORTADO:
		return "segmento não suportado"
	case ERRO_CURSOR_ESGOTADO:
		return "cursor esgotado"
	case ERRO_ES:
		return "erro de E/S"
	default:
		return "erro desconhecido"
	}
}

// CompilerError representa um erro do tradutor com a linha de origem
type CompilerError struct {
	Tipo     TipoErro // Categoria do erro
	Mensagem string   // Mensagem de erro
	Linha    int      // Linha do arquivo .vm (0 quando não se aplica)
	Conteudo string   // Texto da instrução ofensora
	Causa    error    // Erro subjacente, se houver
}

// Error monta a mensagem com tipo, linha e conteúdo
func (e *CompilerError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Tipo.String())
	builder.WriteString(": ")
	builder.WriteString(e.Mensagem)
	if e.Linha > 0 {
		builder.WriteString(fmt.Sprintf(" em linha %d", e.Linha))
	}
	if e.Conteudo != "" {
		builder.WriteString(fmt.Sprintf(" ('%s')", e.Conteudo))
	}
	if e.Causa != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Causa.Error())
	}
	return builder.String()
}

// Unwrap expõe a causa para errors.Is/errors.As
func (e *CompilerError) Unwrap() error {
	return e.Causa
}

// NovoErro cria um novo erro do tradutor
func NovoErro(tipo TipoErro, mensagem string, linha int, conteudo string) *CompilerError {
	return &CompilerError{
		Tipo:     tipo,
		Mensagem: mensagem,
		Linha:    linha,
		Conteudo: conteudo,
	}
}

// NovoErroES embrulha uma falha de E/S
func NovoErroES(mensagem string, causa error) *CompilerError {
	return &CompilerError{
		Tipo:     ERRO_ES,
		Mensagem: mensagem,
		Causa:    causa,
	}
}

// EhErro verifica se err (ou algum erro embrulhado) é do tipo informado
func EhErro(err error, tipo TipoErro) bool {
	var erroTradutor *CompilerError
	if errors.As(err, &erroTradutor) {
		return erroTradutor.Tipo == tipo
	}
	return false
}
