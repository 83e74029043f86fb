package llvm

import (
	"strings"
	"testing"

	"github.com/khevencolino/tradutor-vm/internal/parser"
	"github.com/khevencolino/tradutor-vm/internal/utils"
)

func gerarModulo(t *testing.T, nomeBase string, linhas ...string) string {
	t.Helper()

	p := parser.NovoParser()
	if err := p.Carregar(linhas); err != nil {
		t.Fatalf("Carregar: erro inesperado: %v", err)
	}
	comandos, err := p.Comandos()
	if err != nil {
		t.Fatalf("Comandos: erro inesperado: %v", err)
	}

	backend := NewLLVMBackend(nomeBase)
	for _, comando := range comandos {
		bloco, err := backend.Traduzir(comando)
		if err != nil {
			t.Fatalf("Traduzir(%q): erro inesperado: %v", comando.Texto, err)
		}
		if bloco != "" {
			t.Errorf("Traduzir(%q) = %q; want texto vazio", comando.Texto, bloco)
		}
	}
	modulo, err := backend.Finalizar()
	if err != nil {
		t.Fatalf("Finalizar: erro inesperado: %v", err)
	}
	return modulo
}

func TestModuloContemRAMEFuncao(t *testing.T) {
	modulo := gerarModulo(t, "Foo", "push constant 7", "push constant 8", "add")

	for _, trecho := range []string{"@ram", "[32768 x i16]", "@Foo()", "add i16", "ret void"} {
		if !strings.Contains(modulo, trecho) {
			t.Errorf("módulo não contém %q:\n%s", trecho, modulo)
		}
	}
}

func TestComparacoesUsamSExt(t *testing.T) {
	tests := []struct {
		linha string
		want  string
	}{
		{"eq", "icmp eq"},
		{"gt", "icmp sgt"},
		{"lt", "icmp slt"},
	}
	for _, tt := range tests {
		modulo := gerarModulo(t, "Foo", "push constant 1", "push constant 2", tt.linha)
		if !strings.Contains(modulo, tt.want) {
			t.Errorf("%s: módulo não contém %q", tt.linha, tt.want)
		}
		if !strings.Contains(modulo, "sext i1") {
			t.Errorf("%s: resultado não é estendido com sinal", tt.linha)
		}
	}
}

func TestUnarios(t *testing.T) {
	modulo := gerarModulo(t, "Foo", "push constant 1", "neg", "not")
	if !strings.Contains(modulo, "sub i16 0") {
		t.Errorf("neg não gera sub de zero:\n%s", modulo)
	}
	if !strings.Contains(modulo, "xor i16") {
		t.Errorf("not não gera xor:\n%s", modulo)
	}
}

func TestStaticGlobalPorUnidade(t *testing.T) {
	modulo := gerarModulo(t, "Bar", "push constant 1", "pop static 3", "push static 3")
	if strings.Count(modulo, "@Bar.3 = global") != 1 {
		t.Errorf("esperada uma única global @Bar.3:\n%s", modulo)
	}
}

func TestPopConstantRejeitado(t *testing.T) {
	backend := NewLLVMBackend("Foo")
	comando := parser.Comando{Tipo: parser.C_POP, Segmento: parser.SEGMENTO_CONSTANT, Texto: "pop constant 0"}
	if _, err := backend.Traduzir(comando); !utils.EhErro(err, utils.ERRO_SEGMENTO_NAO_SUPORTADO) {
		t.Errorf("Traduzir(pop constant) erro = %v; want %v", err, utils.ERRO_SEGMENTO_NAO_SUPORTADO)
	}
}

func TestFinalizarIdempotente(t *testing.T) {
	backend := NewLLVMBackend("Foo")
	primeiro, _ := backend.Finalizar()
	segundo, _ := backend.Finalizar()
	if primeiro != segundo {
		t.Error("Finalizar chamado duas vezes produziu módulos diferentes")
	}
	if strings.Count(segundo, "ret void") != 1 {
		t.Errorf("esperado um único ret void:\n%s", segundo)
	}

	comando := parser.Comando{Tipo: parser.C_ARITMETICO, Operador: parser.OP_ADD, Texto: "add"}
	if _, err := backend.Traduzir(comando); err == nil {
		t.Error("Traduzir após Finalizar = nil; want erro")
	}
}

func TestGetGeneratorInfo(t *testing.T) {
	info := GetGeneratorInfo()
	if info["extension"] != NewLLVMBackend("Foo").GetExtension() {
		t.Errorf("extension = %v; want .ll", info["extension"])
	}
}
