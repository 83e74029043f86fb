package llvm

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/khevencolino/tradutor-vm/internal/debug"
	"github.com/khevencolino/tradutor-vm/internal/parser"
	"github.com/khevencolino/tradutor-vm/internal/prelude"
	"github.com/khevencolino/tradutor-vm/internal/utils"
)

// enderecoSP é a célula do ponteiro de pilha
const enderecoSP = 0

// tipoRAM modela a memória Hack: 32K palavras de 16 bits
var tipoRAM = types.NewArray(32768, types.I16)

// LLVMBackend traduz a unidade VM para uma função LLVM que opera sobre
// uma RAM global com o mesmo layout da plataforma Hack (SP em ram[0]).
// O texto só fica pronto em Finalizar.
type LLVMBackend struct {
	module     *ir.Module
	function   *ir.Func
	block      *ir.Block
	ram        *ir.Global
	nomeBase   string
	statics    map[int]*ir.Global
	finalizado bool
}

func NewLLVMBackend(nomeBase string) *LLVMBackend {
	l := &LLVMBackend{
		module:   ir.NewModule(),
		nomeBase: nomeBase,
		statics:  make(map[int]*ir.Global),
	}
	l.ram = l.module.NewGlobalDef("ram", constant.NewZeroInitializer(tipoRAM))
	l.function = l.module.NewFunc(nomeBase, types.Void)
	l.block = l.function.NewBlock("entrada")
	return l
}

func (l *LLVMBackend) GetName() string      { return "LLVM IR" }
func (l *LLVMBackend) GetExtension() string { return ".ll" }

// Traduzir acrescenta o comando à função da unidade; não devolve texto
func (l *LLVMBackend) Traduzir(comando parser.Comando) (string, error) {
	if l.finalizado {
		return "", fmt.Errorf("backend LLVM já finalizado")
	}

	var err error
	switch comando.Tipo {
	case parser.C_ARITMETICO:
		err = l.gerarAritmetico(comando)
	case parser.C_PUSH:
		err = l.gerarPush(comando)
	case parser.C_POP:
		err = l.gerarPop(comando)
	default:
		err = utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "tipo de comando desconhecido", comando.Linha, comando.Texto)
	}
	if err != nil {
		return "", err
	}

	debug.Printf("  %-20s -> %d instruções LLVM\n", comando, len(l.block.Insts))
	return "", nil
}

// Finalizar fecha a função e devolve o módulo inteiro
func (l *LLVMBackend) Finalizar() (string, error) {
	if !l.finalizado {
		l.block.NewRet(nil)
		l.finalizado = true
	}
	return l.module.String(), nil
}

func (l *LLVMBackend) gerarAritmetico(comando parser.Comando) error {
	switch comando.Operador {
	case parser.OP_NEG:
		x := l.desempilhar()
		l.empilhar(l.block.NewSub(constante(0), x))
		return nil
	case parser.OP_NOT:
		x := l.desempilhar()
		l.empilhar(l.block.NewXor(x, constante(-1)))
		return nil
	}

	y := l.desempilhar()
	x := l.desempilhar()

	var resultado value.Value
	switch comando.Operador {
	case parser.OP_ADD:
		resultado = l.block.NewAdd(x, y)
	case parser.OP_SUB:
		resultado = l.block.NewSub(x, y)
	case parser.OP_AND:
		resultado = l.block.NewAnd(x, y)
	case parser.OP_OR:
		resultado = l.block.NewOr(x, y)
	case parser.OP_EQ:
		resultado = l.comparar(enum.IPredEQ, x, y)
	case parser.OP_GT:
		resultado = l.comparar(enum.IPredSGT, x, y)
	case parser.OP_LT:
		resultado = l.comparar(enum.IPredSLT, x, y)
	default:
		return utils.NovoErro(utils.ERRO_INSTRUCAO_MALFORMADA, "operador desconhecido", comando.Linha, comando.Texto)
	}
	l.empilhar(resultado)
	return nil
}

// comparar estende o i1 com sinal: verdadeiro vira -1, falso vira 0
func (l *LLVMBackend) comparar(predicado enum.IPred, x, y value.Value) value.Value {
	cmp := l.block.NewICmp(predicado, x, y)
	return l.block.NewSExt(cmp, types.I16)
}

func (l *LLVMBackend) gerarPush(comando parser.Comando) error {
	if err := validarIndice(comando); err != nil {
		return err
	}
	if comando.Segmento == parser.SEGMENTO_CONSTANT {
		l.empilhar(constante(comando.Indice))
		return nil
	}
	l.empilhar(l.block.NewLoad(types.I16, l.endereco(comando)))
	return nil
}

func (l *LLVMBackend) gerarPop(comando parser.Comando) error {
	if comando.Segmento == parser.SEGMENTO_CONSTANT {
		return utils.NovoErro(utils.ERRO_SEGMENTO_NAO_SUPORTADO, "pop no segmento constant", comando.Linha, comando.Texto)
	}
	if err := validarIndice(comando); err != nil {
		return err
	}
	// O endereço é calculado antes do pop, como no assembly
	destino := l.endereco(comando)
	l.block.NewStore(l.desempilhar(), destino)
	return nil
}

// endereco devolve o ponteiro da célula alvo de push/pop
func (l *LLVMBackend) endereco(comando parser.Comando) value.Value {
	switch comando.Segmento {
	case parser.SEGMENTO_LOCAL, parser.SEGMENTO_ARGUMENT, parser.SEGMENTO_THIS, parser.SEGMENTO_THAT:
		base := l.block.NewLoad(types.I16, l.celula(constante(celulaBase(comando.Segmento))))
		return l.celula(l.block.NewAdd(base, constante(comando.Indice)))
	case parser.SEGMENTO_TEMP:
		return l.celula(constante(prelude.BaseTemp + comando.Indice))
	case parser.SEGMENTO_POINTER:
		return l.celula(constante(prelude.BasePointer + comando.Indice))
	default:
		return l.static(comando.Indice)
	}
}

// static cria sob demanda a global <NomeBase>.<i>
func (l *LLVMBackend) static(indice int) *ir.Global {
	if global, ok := l.statics[indice]; ok {
		return global
	}
	global := l.module.NewGlobalDef(fmt.Sprintf("%s.%d", l.nomeBase, indice), constant.NewInt(types.I16, 0))
	l.statics[indice] = global
	return global
}

func (l *LLVMBackend) celula(endereco value.Value) value.Value {
	return l.block.NewGetElementPtr(tipoRAM, l.ram, constant.NewInt(types.I64, 0), endereco)
}

// empilhar grava em ram[SP] e incrementa SP
func (l *LLVMBackend) empilhar(valor value.Value) {
	celulaSP := l.celula(constante(enderecoSP))
	sp := l.block.NewLoad(types.I16, celulaSP)
	l.block.NewStore(valor, l.celula(sp))
	l.block.NewStore(l.block.NewAdd(sp, constante(1)), celulaSP)
}

// desempilhar decrementa SP e lê ram[SP]
func (l *LLVMBackend) desempilhar() value.Value {
	celulaSP := l.celula(constante(enderecoSP))
	sp := l.block.NewSub(l.block.NewLoad(types.I16, celulaSP), constante(1))
	l.block.NewStore(sp, celulaSP)
	return l.block.NewLoad(types.I16, l.celula(sp))
}

func validarIndice(comando parser.Comando) error {
	if comando.Segmento < parser.SEGMENTO_CONSTANT || comando.Segmento > parser.SEGMENTO_POINTER {
		return utils.NovoErro(utils.ERRO_SEGMENTO_NAO_SUPORTADO, "segmento desconhecido", comando.Linha, comando.Texto)
	}
	if comando.Indice < 0 || comando.Indice >= comando.Segmento.Tamanho() {
		return utils.NovoErro(utils.ERRO_SEGMENTO_NAO_SUPORTADO,
			fmt.Sprintf("índice %d fora do segmento %s", comando.Indice, comando.Segmento), comando.Linha, comando.Texto)
	}
	return nil
}

// celulaBase devolve o endereço de LCL, ARG, THIS ou THAT
func celulaBase(segmento parser.Segmento) int {
	nome := map[parser.Segmento]string{
		parser.SEGMENTO_LOCAL:    prelude.LCL,
		parser.SEGMENTO_ARGUMENT: prelude.ARG,
		parser.SEGMENTO_THIS:     prelude.THIS,
		parser.SEGMENTO_THAT:     prelude.THAT,
	}[segmento]
	endereco, _ := prelude.Padrao.Endereco(nome)
	return endereco
}

func constante(v int) *constant.Int {
	return constant.NewInt(types.I16, int64(v))
}
