package hack

import (
	"fmt"
	"strings"

	"github.com/khevencolino/tradutor-vm/internal/debug"
	"github.com/khevencolino/tradutor-vm/internal/parser"
	"github.com/khevencolino/tradutor-vm/internal/prelude"
	"github.com/khevencolino/tradutor-vm/internal/utils"
)

// HackBackend gera assembly Hack para um arquivo .vm.
// Não é seguro para uso concorrente: o contador de rótulos pertence a
// uma única tradução.
type HackBackend struct {
	output          strings.Builder
	nomeBase        string // Prefixo das variáveis static (Foo.3)
	contadorRotulos int    // Sufixo dos rótulos TRUE_n/CONTINUE_n
}

func NewHackBackend(nomeBase string) *HackBackend {
	return &HackBackend{
		nomeBase: nomeBase,
	}
}

func (h *HackBackend) GetName() string      { return "Assembly Hack" }
func (h *HackBackend) GetExtension() string { return ".asm" }

// Traduzir devolve o bloco de instruções Hack de um comando
func (h *HackBackend) Traduzir(comando parser.Comando) (string, error) {
	h.output.Reset()

	var err error
	switch comando.Tipo {
	case parser.C_ARITMETICO:
		err = h.gerarAritmetico(comando)
	case parser.C_PUSH:
		err = h.gerarPush(comando)
	case parser.C_POP:
		err = h.gerarPop(comando)
	default:
		err = utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "tipo de comando desconhecido", comando.Linha, comando.Texto)
	}
	if err != nil {
		return "", err
	}

	debug.Printf("  %-20s -> %d instruções\n", comando, strings.Count(h.output.String(), "\n"))
	return h.output.String(), nil
}

// Finalizar não emite nada: sem laço final nem bootstrap
func (h *HackBackend) Finalizar() (string, error) {
	return "", nil
}

// Comentar devolve a linha VM como comentário Hack
func (h *HackBackend) Comentar(texto string) string {
	return "// " + texto + "\n"
}

// ContadorRotulos retorna quantas comparações já foram traduzidas
func (h *HackBackend) ContadorRotulos() int {
	return h.contadorRotulos
}

func (h *HackBackend) emitir(instrucoes ...string) {
	for _, instrucao := range instrucoes {
		h.output.WriteString(instrucao)
		h.output.WriteString("\n")
	}
}

// gerarAritmetico traduz os nove operadores
func (h *HackBackend) gerarAritmetico(comando parser.Comando) error {
	switch comando.Operador {
	case parser.OP_ADD:
		h.gerarBinario("M=D+M")
	case parser.OP_SUB:
		h.gerarBinario("M=M-D") // segundo - primeiro
	case parser.OP_AND:
		h.gerarBinario("M=D&M")
	case parser.OP_OR:
		h.gerarBinario("M=D|M")
	case parser.OP_NEG:
		h.gerarUnario("M=-M")
	case parser.OP_NOT:
		h.gerarUnario("M=!M")
	case parser.OP_EQ:
		h.gerarComparacao("JEQ")
	case parser.OP_GT:
		h.gerarComparacao("JGT")
	case parser.OP_LT:
		h.gerarComparacao("JLT")
	default:
		return utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "operador desconhecido", comando.Linha, comando.Texto)
	}
	return nil
}

// gerarBinario: D = topo, A aponta para o novo topo; SP só anda uma vez
func (h *HackBackend) gerarBinario(calculo string) {
	h.emitir(
		"@"+prelude.SP,
		"AM=M-1",
		"D=M",
		"A=A-1",
		calculo,
	)
}

// gerarUnario opera no topo sem mexer em SP
func (h *HackBackend) gerarUnario(calculo string) {
	h.emitir(
		"@"+prelude.SP,
		"A=M-1",
		calculo,
	)
}

// gerarComparacao deixa -1 (verdadeiro) ou 0 (falso) no lugar do segundo operando
func (h *HackBackend) gerarComparacao(salto string) {
	verdadeiro := fmt.Sprintf("TRUE_%d", h.contadorRotulos)
	continua := fmt.Sprintf("CONTINUE_%d", h.contadorRotulos)
	h.contadorRotulos++

	h.emitir(
		"@"+prelude.SP,
		"AM=M-1",
		"D=M",
		"A=A-1",
		"D=M-D",
		"@"+verdadeiro,
		"D;"+salto,
		// falso
		"@"+prelude.SP,
		"A=M-1",
		"M=0",
		"@"+continua,
		"0;JMP",
		"("+verdadeiro+")",
		"@"+prelude.SP,
		"A=M-1",
		"M=-1",
		"("+continua+")",
	)
}

// gerarPush carrega o valor em D e empilha
func (h *HackBackend) gerarPush(comando parser.Comando) error {
	if err := h.validarIndice(comando); err != nil {
		return err
	}

	switch comando.Segmento {
	case parser.SEGMENTO_CONSTANT:
		h.emitir(fmt.Sprintf("@%d", comando.Indice), "D=A")
	case parser.SEGMENTO_LOCAL, parser.SEGMENTO_ARGUMENT, parser.SEGMENTO_THIS, parser.SEGMENTO_THAT:
		h.emitir(
			"@"+simboloBase(comando.Segmento),
			"D=M",
			fmt.Sprintf("@%d", comando.Indice),
			"A=D+A",
			"D=M",
		)
	default:
		h.emitir("@"+h.celulaDireta(comando), "D=M")
	}

	// Escreve em RAM[SP] antes de incrementar
	h.emitir(
		"@"+prelude.SP,
		"A=M",
		"M=D",
		"@"+prelude.SP,
		"M=M+1",
	)
	return nil
}

// gerarPop desempilha em D e grava no destino
func (h *HackBackend) gerarPop(comando parser.Comando) error {
	if comando.Segmento == parser.SEGMENTO_CONSTANT {
		return utils.NovoErro(utils.ERRO_SEGMENTO_NAO_SUPORTADO, "pop no segmento constant", comando.Linha, comando.Texto)
	}
	if err := h.validarIndice(comando); err != nil {
		return err
	}

	h.emitir(
		"@"+prelude.SP,
		"AM=M-1",
		"D=M",
	)

	if comando.Segmento.EhPonteiro() {
		h.armazenarIndireto(simboloBase(comando.Segmento), comando.Indice)
		return nil
	}

	h.emitir("@"+h.celulaDireta(comando), "M=D")
	return nil
}

// armazenarIndireto grava D em RAM[base+indice] sem perder D.
// Só existe um registrador de endereço: o valor pendente vai para R13,
// o endereço efetivo para R14, e só então o valor volta para D.
func (h *HackBackend) armazenarIndireto(base string, indice int) {
	h.emitir(
		"@"+prelude.R13,
		"M=D",
		"@"+base,
		"D=M",
		fmt.Sprintf("@%d", indice),
		"D=D+A",
		"@"+prelude.R14,
		"M=D",
		"@"+prelude.R13,
		"D=M",
		"@"+prelude.R14,
		"A=M",
		"M=D",
	)
}

// celulaDireta resolve static, temp e pointer numa célula endereçável por @
func (h *HackBackend) celulaDireta(comando parser.Comando) string {
	switch comando.Segmento {
	case parser.SEGMENTO_STATIC:
		return fmt.Sprintf("%s.%d", h.nomeBase, comando.Indice)
	case parser.SEGMENTO_TEMP:
		return fmt.Sprintf("%d", prelude.BaseTemp+comando.Indice)
	case parser.SEGMENTO_POINTER:
		if comando.Indice == 0 {
			return prelude.THIS
		}
		return prelude.THAT
	default:
		panic(fmt.Sprintf("segmento %s não tem célula direta", comando.Segmento))
	}
}

// validarIndice rejeita combinações que o parser já deveria ter barrado
func (h *HackBackend) validarIndice(comando parser.Comando) error {
	if comando.Segmento < parser.SEGMENTO_CONSTANT || comando.Segmento > parser.SEGMENTO_POINTER {
		return utils.NovoErro(utils.ERRO_SEGMENTO_NAO_SUPORTADO, "segmento desconhecido", comando.Linha, comando.Texto)
	}
	if comando.Indice < 0 || comando.Indice >= comando.Segmento.Tamanho() {
		return utils.NovoErro(utils.ERRO_SEGMENTO_NAO_SUPORTADO,
			fmt.Sprintf("índice %d fora do segmento %s", comando.Indice, comando.Segmento), comando.Linha, comando.Texto)
	}
	return nil
}

// simboloBase mapeia os segmentos ponteiro para a célula da base
func simboloBase(segmento parser.Segmento) string {
	switch segmento {
	case parser.SEGMENTO_LOCAL:
		return prelude.LCL
	case parser.SEGMENTO_ARGUMENT:
		return prelude.ARG
	case parser.SEGMENTO_THIS:
		return prelude.THIS
	case parser.SEGMENTO_THAT:
		return prelude.THAT
	default:
		panic(fmt.Sprintf("segmento %s não tem célula base", segmento))
	}
}
