package parser

import (
	"strconv"
	"testing"

	"github.com/khevencolino/tradutor-vm/internal/lexer"
	"github.com/khevencolino/tradutor-vm/internal/utils"
)

// carregar cria um parser já carregado ou falha o teste
func carregar(t *testing.T, linhas ...string) *Parser {
	t.Helper()
	p := NovoParser()
	if err := p.Carregar(linhas); err != nil {
		t.Fatalf("Carregar(%q) erro inesperado: %v", linhas, err)
	}
	return p
}

func TestClassificarAritmeticos(t *testing.T) {
	tests := []struct {
		linha string
		want  Operador
	}{
		{"add", OP_ADD},
		{"sub", OP_SUB},
		{"neg", OP_NEG},
		{"eq", OP_EQ},
		{"gt", OP_GT},
		{"lt", OP_LT},
		{"and", OP_AND},
		{"or", OP_OR},
		{"not", OP_NOT},
	}
	for _, tc := range tests {
		p := carregar(t, tc.linha)
		if err := p.Avancar(); err != nil {
			t.Fatalf("Avancar() erro: %v", err)
		}
		got, err := p.Classificar()
		if err != nil {
			t.Fatalf("Classificar(%q) erro: %v", tc.linha, err)
		}
		if got.Tipo != C_ARITMETICO || got.Operador != tc.want || got.Arg1() != tc.linha {
			t.Errorf("Classificar(%q) = %v/%v/%q; want C_ARITMETICO/%v/%q", tc.linha, got.Tipo, got.Operador, got.Arg1(), tc.want, tc.linha)
		}
	}
}

func TestClassificarPushPop(t *testing.T) {
	for _, palavra := range lexer.Segmentos {
		segmento, ok := SegmentoDePalavra(palavra)
		if !ok {
			t.Fatalf("SegmentoDePalavra(%q) não reconhecido", palavra)
		}
		if segmento.String() != palavra {
			t.Errorf("Segmento(%q).String() = %q", palavra, segmento.String())
		}

		for _, indice := range []int{0, 1} {
			linhas := []string{"push " + palavra + " " + strconv.Itoa(indice)}
			if segmento != SEGMENTO_CONSTANT {
				linhas = append(linhas, "pop "+palavra+" "+strconv.Itoa(indice))
			}
			p := carregar(t, linhas...)
			for p.TemMais() {
				if err := p.Avancar(); err != nil {
					t.Fatalf("Avancar() erro: %v", err)
				}
				got, err := p.Classificar()
				if err != nil {
					t.Fatalf("Classificar() erro: %v", err)
				}
				if got.Arg1() != palavra || got.Arg2() != indice || got.Segmento != segmento {
					t.Errorf("Classificar(%q) arg1=%q arg2=%d; want %q %d", got.Texto, got.Arg1(), got.Arg2(), palavra, indice)
				}
				if got.String() != got.Texto {
					t.Errorf("Comando.String() = %q; want %q", got.String(), got.Texto)
				}
			}
		}
	}
}

func TestClassificarIndiceGrande(t *testing.T) {
	p := carregar(t, "push constant 32767", "pop local 1234", "push static 17")
	comandos, err := p.Comandos()
	if err != nil {
		t.Fatalf("Comandos() erro: %v", err)
	}
	want := []Comando{
		{Tipo: C_PUSH, Segmento: SEGMENTO_CONSTANT, Indice: 32767, Texto: "push constant 32767", Linha: 1},
		{Tipo: C_POP, Segmento: SEGMENTO_LOCAL, Indice: 1234, Texto: "pop local 1234", Linha: 2},
		{Tipo: C_PUSH, Segmento: SEGMENTO_STATIC, Indice: 17, Texto: "push static 17", Linha: 3},
	}
	for i := range want {
		if comandos[i] != want[i] {
			t.Errorf("Comandos()[%d] = %+v; want %+v", i, comandos[i], want[i])
		}
	}
}

func TestCursor(t *testing.T) {
	p := carregar(t, "// só comentário", "push constant 1", "", "neg")

	if _, err := p.Classificar(); !utils.EhErro(err, utils.ERRO_CURSOR_ESGOTADO) {
		t.Errorf("Classificar() antes de Avancar erro = %v; want cursor esgotado", err)
	}

	var vistos []string
	for p.TemMais() {
		if err := p.Avancar(); err != nil {
			t.Fatalf("Avancar() erro: %v", err)
		}
		c, err := p.Classificar()
		if err != nil {
			t.Fatalf("Classificar() erro: %v", err)
		}
		vistos = append(vistos, c.String())
	}
	if len(vistos) != 2 || vistos[0] != "push constant 1" || vistos[1] != "neg" {
		t.Errorf("comandos vistos = %v; want [push constant 1 neg]", vistos)
	}

	if err := p.Avancar(); !utils.EhErro(err, utils.ERRO_CURSOR_ESGOTADO) {
		t.Errorf("Avancar() no fim erro = %v; want cursor esgotado", err)
	}
	// O comando atual permanece após a falha
	if c, err := p.Classificar(); err != nil || c.Operador != OP_NEG {
		t.Errorf("Classificar() após fim = %v, %v; want neg", c, err)
	}
}

func TestClassificarIdempotente(t *testing.T) {
	p := carregar(t, "pop argument 3")
	if err := p.Avancar(); err != nil {
		t.Fatalf("Avancar() erro: %v", err)
	}
	a, errA := p.Classificar()
	b, errB := p.Classificar()
	if errA != nil || errB != nil || a != b {
		t.Errorf("Classificar() não idempotente: %+v (%v) vs %+v (%v)", a, errA, b, errB)
	}
	if a.Linha != 1 || a.Segmento != SEGMENTO_ARGUMENT || a.Indice != 3 {
		t.Errorf("Classificar() = %+v; want pop argument 3 na linha 1", a)
	}
}

func TestCarregarRejeita(t *testing.T) {
	tests := []struct {
		linha string
		tipo  utils.TipoErro
	}{
		{"push constant -1", utils.ERRO_OPERANDO_MALFORMADO},
		{"push constant +1", utils.ERRO_OPERANDO_MALFORMADO},
		{"push local x", utils.ERRO_OPERANDO_MALFORMADO},
		{"push constant 32768", utils.ERRO_OPERANDO_MALFORMADO},
		{"push constant 99999999999999999999", utils.ERRO_OPERANDO_MALFORMADO},
		{"pop temp 8", utils.ERRO_OPERANDO_MALFORMADO},
		{"push pointer 2", utils.ERRO_OPERANDO_MALFORMADO},
		{"pop constant 0", utils.ERRO_INSTRUCAO_MALFORMADA},
		{"pus local 0", utils.ERRO_INSTRUCAO_MALFORMADA},
		{"push local", utils.ERRO_INSTRUCAO_MALFORMADA},
	}
	for _, tc := range tests {
		p := NovoParser()
		err := p.Carregar([]string{"push constant 1", "add", tc.linha, "push constant 2"})
		if !utils.EhErro(err, tc.tipo) {
			t.Errorf("Carregar(%q) erro = %v; want %v", tc.linha, err, tc.tipo)
		}
		if p.TemMais() {
			t.Errorf("Carregar(%q) com erro deixou instruções carregadas", tc.linha)
		}
	}
}

func TestCarregarVazio(t *testing.T) {
	p := carregar(t, "", "// nada")
	if p.TemMais() {
		t.Errorf("TemMais() = true para entrada sem instruções")
	}
	comandos, err := p.Comandos()
	if err != nil || len(comandos) != 0 {
		t.Errorf("Comandos() = %v, %v; want vazio", comandos, err)
	}
}
