package maquina

import (
	"strconv"
	"strings"
	"testing"
)

func TestMontarRotulosEVariaveis(t *testing.T) {
	fonte := strings.Join([]string{
		"// comentário",
		"@i",
		"M=0",
		"(LOOP)",
		"@j",
		"@LOOP",
		"0;JMP",
		"@SP",
		"@Foo.3",
	}, "\n")

	programa, err := Montar(fonte)
	if err != nil {
		t.Fatalf("Montar: erro inesperado: %v", err)
	}
	if len(programa.Instrucoes) != 7 {
		t.Fatalf("len(Instrucoes) = %d; want 7", len(programa.Instrucoes))
	}

	tests := []struct {
		simbolo string
		want    int
	}{
		{"LOOP", 2},
		{"i", 16},
		{"j", 17},
		{"Foo.3", 18},
	}
	for _, tt := range tests {
		if got := programa.Simbolos[tt.simbolo]; got != tt.want {
			t.Errorf("Simbolos[%q] = %d; want %d", tt.simbolo, got, tt.want)
		}
	}

	if got := programa.Instrucoes[5].Valor; got != 0 {
		t.Errorf("@SP montado como %d; want 0", got)
	}
}

func TestMontarErros(t *testing.T) {
	tests := []struct {
		nome  string
		fonte string
	}{
		{"destino inválido", "X=D"},
		{"cálculo inválido", "D=D*A"},
		{"salto inválido", "0;JXX"},
		{"rótulo duplicado", "(A1)\n(A1)"},
		{"rótulo sem fechar", "(LOOP"},
		{"imediato grande", "@40000"},
	}
	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			if _, err := Montar(tt.fonte); err == nil {
				t.Errorf("Montar(%q) = nil; want erro", tt.fonte)
			}
		})
	}
}

func TestExecutarAritmetica(t *testing.T) {
	tests := []struct {
		nome   string
		fonte  string
		celula int
		want   int16
	}{
		{"soma", "@2\nD=A\n@3\nD=D+A\n@0\nM=D", 0, 5},
		{"subtração", "@10\nD=A\n@100\nM=D\n@3\nD=A\n@100\nM=M-D", 100, 7},
		{"negação", "@9\nD=A\n@100\nM=D\nM=-M", 100, -9},
		{"not", "@100\nM=0\nM=!M", 100, -1},
		{"and", "@12\nD=A\n@10\nD=D&A\n@100\nM=D", 100, 8},
		{"or", "@12\nD=A\n@3\nD=D|A\n@100\nM=D", 100, 15},
	}
	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			m := NovaMaquina()
			if _, err := m.ExecutarFonte(tt.fonte); err != nil {
				t.Fatalf("ExecutarFonte: erro inesperado: %v", err)
			}
			if got := m.RAM[tt.celula]; got != tt.want {
				t.Errorf("RAM[%d] = %d; want %d", tt.celula, got, tt.want)
			}
		})
	}
}

func TestExecutarEscritaUsaEnderecoAnterior(t *testing.T) {
	// AM=M-1 grava em RAM[A antigo] e só depois atualiza A
	m := NovaMaquina()
	m.RAM[0] = 258
	if _, err := m.ExecutarFonte("@0\nAM=M-1\nD=A"); err != nil {
		t.Fatalf("ExecutarFonte: erro inesperado: %v", err)
	}
	if m.RAM[0] != 257 {
		t.Errorf("RAM[0] = %d; want 257", m.RAM[0])
	}
	if m.A != 257 || m.D != 257 {
		t.Errorf("A, D = %d, %d; want 257, 257", m.A, m.D)
	}
}

func TestExecutarSaltos(t *testing.T) {
	tests := []struct {
		salto string
		valor int
		want  int16
	}{
		{"JEQ", 0, 1},
		{"JEQ", 1, 0},
		{"JGT", 1, 1},
		{"JGT", 0, 0},
		{"JLT", -1, 1},
		{"JLT", 0, 0},
		{"JNE", 3, 1},
		{"JGE", 0, 1},
		{"JLE", 1, 0},
	}
	for _, tt := range tests {
		fonte := strings.Join([]string{
			carregarD(tt.valor),
			"@SIM",
			"D;" + tt.salto,
			"@100",
			"M=0",
			"@FIM",
			"0;JMP",
			"(SIM)",
			"@100",
			"M=1",
			"(FIM)",
		}, "\n")

		m := NovaMaquina()
		if _, err := m.ExecutarFonte(fonte); err != nil {
			t.Fatalf("%s com %d: erro inesperado: %v", tt.salto, tt.valor, err)
		}
		if got := m.RAM[100]; got != tt.want {
			t.Errorf("%s com D=%d: RAM[100] = %d; want %d", tt.salto, tt.valor, got, tt.want)
		}
	}
}

func TestExecutarLimitePassos(t *testing.T) {
	m := NovaMaquina()
	if _, err := m.ExecutarFonte("(LOOP)\n@LOOP\n0;JMP"); err == nil {
		t.Error("laço infinito terminou sem erro")
	}
}

func TestTopo(t *testing.T) {
	m := NovaMaquina()
	m.RAM[0] = 258
	m.RAM[257] = 42
	if got := m.Topo(); got != 42 {
		t.Errorf("Topo() = %d; want 42", got)
	}
}

// carregarD gera instruções que deixam v em D, inclusive negativos
func carregarD(v int) string {
	if v < 0 {
		return "@" + strconv.Itoa(-v) + "\nD=-A"
	}
	return "@" + strconv.Itoa(v) + "\nD=A"
}
