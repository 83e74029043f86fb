package maquina

import "fmt"

// TipoInstrucao distingue instruções A e C
type TipoInstrucao int

const (
	INSTRUCAO_A TipoInstrucao = iota // @valor
	INSTRUCAO_C                      // dest=comp;jump
)

// Instrucao é uma instrução Hack já montada (símbolos resolvidos)
type Instrucao struct {
	Tipo    TipoInstrucao
	Valor   int16  // Apenas para INSTRUCAO_A
	Destino string // "", "M", "D", "MD", "A", "AM", "AD", "AMD"
	Calculo string // comp, ex.: "D+M"
	Salto   string // "", "JGT", "JEQ", ...
	Linha   int    // Linha no texto .asm, para debug
}

func (i Instrucao) String() string {
	if i.Tipo == INSTRUCAO_A {
		return fmt.Sprintf("@%d", i.Valor)
	}
	texto := i.Calculo
	if i.Destino != "" {
		texto = i.Destino + "=" + texto
	}
	if i.Salto != "" {
		texto += ";" + i.Salto
	}
	return texto
}

// calculosValidos lista os comp aceitos pela ALU, incluindo as formas
// comutadas que montadores costumam aceitar
var calculosValidos = map[string]bool{
	"0": true, "1": true, "-1": true,
	"D": true, "A": true, "M": true,
	"!D": true, "!A": true, "!M": true,
	"-D": true, "-A": true, "-M": true,
	"D+1": true, "A+1": true, "M+1": true,
	"D-1": true, "A-1": true, "M-1": true,
	"D+A": true, "A+D": true, "D+M": true, "M+D": true,
	"D-A": true, "A-D": true, "D-M": true, "M-D": true,
	"D&A": true, "A&D": true, "D&M": true, "M&D": true,
	"D|A": true, "A|D": true, "D|M": true, "M|D": true,
}

var destinosValidos = map[string]bool{
	"": true, "M": true, "D": true, "MD": true, "DM": true,
	"A": true, "AM": true, "MA": true, "AD": true, "DA": true, "AMD": true, "ADM": true,
}

var saltosValidos = map[string]bool{
	"": true, "JGT": true, "JEQ": true, "JGE": true, "JLT": true, "JNE": true, "JLE": true, "JMP": true,
}
