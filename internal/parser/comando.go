package parser

import (
	"fmt"

	"github.com/khevencolino/tradutor-vm/internal/prelude"
)

// TipoComando representa a variante de um comando classificado
type TipoComando int

const (
	C_ARITMETICO TipoComando = iota // add, sub, neg, eq, gt, lt, and, or, not
	C_PUSH                          // push <segmento> <índice>
	C_POP                           // pop <segmento> <índice>
)

// String retorna representação em string do tipo de comando
func (t TipoComando) String() string {
	switch t {
	case C_ARITMETICO:
		return "C_ARITMETICO"
	case C_PUSH:
		return "C_PUSH"
	case C_POP:
		return "C_POP"
	default:
		return "?"
	}
}

// Operador representa os nove operadores aritméticos e lógicos
type Operador int

const (
	OP_ADD Operador = iota
	OP_SUB
	OP_NEG
	OP_EQ
	OP_GT
	OP_LT
	OP_AND
	OP_OR
	OP_NOT
)

// String retorna a palavra-chave do operador
func (o Operador) String() string {
	switch o {
	case OP_ADD:
		return "add"
	case OP_SUB:
		return "sub"
	case OP_NEG:
		return "neg"
	case OP_EQ:
		return "eq"
	case OP_GT:
		return "gt"
	case OP_LT:
		return "lt"
	case OP_AND:
		return "and"
	case OP_OR:
		return "or"
	case OP_NOT:
		return "not"
	default:
		return "?"
	}
}

// OperadorDePalavra converte a palavra-chave no operador
func OperadorDePalavra(palavra string) (Operador, bool) {
	switch palavra {
	case "add":
		return OP_ADD, true
	case "sub":
		return OP_SUB, true
	case "neg":
		return OP_NEG, true
	case "eq":
		return OP_EQ, true
	case "gt":
		return OP_GT, true
	case "lt":
		return OP_LT, true
	case "and":
		return OP_AND, true
	case "or":
		return OP_OR, true
	case "not":
		return OP_NOT, true
	default:
		return 0, false
	}
}

// Segmento representa os segmentos de memória virtual
type Segmento int

const (
	SEGMENTO_CONSTANT Segmento = iota
	SEGMENTO_LOCAL
	SEGMENTO_ARGUMENT
	SEGMENTO_THIS
	SEGMENTO_THAT
	SEGMENTO_STATIC
	SEGMENTO_TEMP
	SEGMENTO_POINTER
)

// String retorna a palavra-chave do segmento
func (s Segmento) String() string {
	switch s {
	case SEGMENTO_CONSTANT:
		return "constant"
	case SEGMENTO_LOCAL:
		return "local"
	case SEGMENTO_ARGUMENT:
		return "argument"
	case SEGMENTO_THIS:
		return "this"
	case SEGMENTO_THAT:
		return "that"
	case SEGMENTO_STATIC:
		return "static"
	case SEGMENTO_TEMP:
		return "temp"
	case SEGMENTO_POINTER:
		return "pointer"
	default:
		return "?"
	}
}

// SegmentoDePalavra converte a palavra-chave no segmento
func SegmentoDePalavra(palavra string) (Segmento, bool) {
	switch palavra {
	case "constant":
		return SEGMENTO_CONSTANT, true
	case "local":
		return SEGMENTO_LOCAL, true
	case "argument":
		return SEGMENTO_ARGUMENT, true
	case "this":
		return SEGMENTO_THIS, true
	case "that":
		return SEGMENTO_THAT, true
	case "static":
		return SEGMENTO_STATIC, true
	case "temp":
		return SEGMENTO_TEMP, true
	case "pointer":
		return SEGMENTO_POINTER, true
	default:
		return 0, false
	}
}

// EhPonteiro indica segmentos cuja base fica numa célula (LCL, ARG, THIS, THAT)
func (s Segmento) EhPonteiro() bool {
	return s == SEGMENTO_LOCAL || s == SEGMENTO_ARGUMENT || s == SEGMENTO_THIS || s == SEGMENTO_THAT
}

// Tamanho retorna quantos índices o segmento admite
func (s Segmento) Tamanho() int {
	switch s {
	case SEGMENTO_TEMP:
		return prelude.TamanhoTemp
	case SEGMENTO_POINTER:
		return prelude.TamanhoPtr
	default:
		return prelude.LimiteImedia + 1
	}
}

// Comando representa uma instrução classificada
type Comando struct {
	Tipo     TipoComando
	Operador Operador // Apenas para C_ARITMETICO
	Segmento Segmento // Apenas para C_PUSH/C_POP
	Indice   int      // Apenas para C_PUSH/C_POP
	Texto    string   // Linha aparada de origem
	Linha    int      // Linha no arquivo .vm
}

// Arg1 retorna o operador (aritmético) ou o segmento (push/pop)
func (c Comando) Arg1() string {
	if c.Tipo == C_ARITMETICO {
		return c.Operador.String()
	}
	return c.Segmento.String()
}

// Arg2 retorna o índice de push/pop
func (c Comando) Arg2() int {
	return c.Indice
}

// String retorna o comando na sintaxe da VM
func (c Comando) String() string {
	switch c.Tipo {
	case C_ARITMETICO:
		return c.Operador.String()
	case C_PUSH:
		return fmt.Sprintf("push %s %d", c.Segmento, c.Indice)
	case C_POP:
		return fmt.Sprintf("pop %s %d", c.Segmento, c.Indice)
	default:
		return "?"
	}
}
