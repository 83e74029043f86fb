// Package maquina monta e executa assembly Hack. Serve para verificar o
// código gerado pelo tradutor; não faz parte do fluxo de tradução.
package maquina

import (
	"fmt"
	"strings"

	"github.com/khevencolino/tradutor-vm/internal/debug"
)

const TamanhoRAM = 32768

// LimitePassos evita laços infinitos em programas sem fim explícito
const LimitePassos = 1_000_000

type Maquina struct {
	RAM [TamanhoRAM]int16
	A   int16
	D   int16
	PC  int // program counter
}

func NovaMaquina() *Maquina {
	return &Maquina{}
}

// Executar roda o programa até o PC sair da ROM
func (m *Maquina) Executar(programa *Programa) error {
	instrucoes := programa.Instrucoes

	debug.Printf("📊 Programa Hack (%d instruções):\n", len(instrucoes))
	if debug.Enabled {
		for i, instr := range instrucoes {
			debug.Printf("  %03d: %s\n", i, instr)
		}
		debug.Println()
	}

	passos := 0
	for m.PC >= 0 && m.PC < len(instrucoes) {
		if passos >= LimitePassos {
			return fmt.Errorf("limite de %d passos excedido (PC=%d)", LimitePassos, m.PC)
		}
		passos++

		if err := m.passo(instrucoes[m.PC]); err != nil {
			return err
		}
	}

	debug.Printf("✅ Execução concluída em %d passos\n", passos)
	return nil
}

// ExecutarFonte monta e executa um texto assembly
func (m *Maquina) ExecutarFonte(fonte string) (*Programa, error) {
	programa, err := Montar(fonte)
	if err != nil {
		return nil, err
	}
	return programa, m.Executar(programa)
}

// passo executa uma instrução e atualiza o PC
func (m *Maquina) passo(instr Instrucao) error {
	if instr.Tipo == INSTRUCAO_A {
		m.A = instr.Valor
		m.PC++
		return nil
	}

	endereco := m.A
	saida, err := m.calcular(instr.Calculo, endereco)
	if err != nil {
		return fmt.Errorf("linha %d: %v", instr.Linha, err)
	}

	// M é gravado no endereço anterior à atualização de A
	if strings.Contains(instr.Destino, "M") {
		if err := m.validarEndereco(endereco); err != nil {
			return fmt.Errorf("linha %d: %v", instr.Linha, err)
		}
		m.RAM[endereco] = saida
	}
	if strings.Contains(instr.Destino, "A") {
		m.A = saida
	}
	if strings.Contains(instr.Destino, "D") {
		m.D = saida
	}

	if saltar(instr.Salto, saida) {
		m.PC = int(endereco)
	} else {
		m.PC++
	}
	return nil
}

// calcular avalia o comp com A/M lidos antes de qualquer escrita
func (m *Maquina) calcular(calculo string, endereco int16) (int16, error) {
	y := m.A
	if strings.Contains(calculo, "M") {
		if err := m.validarEndereco(endereco); err != nil {
			return 0, err
		}
		y = m.RAM[endereco]
		calculo = strings.ReplaceAll(calculo, "M", "A")
	}
	d := m.D

	switch calculo {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	case "-1":
		return -1, nil
	case "D":
		return d, nil
	case "A":
		return y, nil
	case "!D":
		return ^d, nil
	case "!A":
		return ^y, nil
	case "-D":
		return -d, nil
	case "-A":
		return -y, nil
	case "D+1":
		return d + 1, nil
	case "A+1":
		return y + 1, nil
	case "D-1":
		return d - 1, nil
	case "A-1":
		return y - 1, nil
	case "D+A", "A+D":
		return d + y, nil
	case "D-A":
		return d - y, nil
	case "A-D":
		return y - d, nil
	case "D&A", "A&D":
		return d & y, nil
	case "D|A", "A|D":
		return d | y, nil
	default:
		return 0, fmt.Errorf("cálculo desconhecido '%s'", calculo)
	}
}

func (m *Maquina) validarEndereco(endereco int16) error {
	if endereco < 0 {
		return fmt.Errorf("endereço de RAM inválido: %d", endereco)
	}
	return nil
}

func saltar(salto string, valor int16) bool {
	switch salto {
	case "JGT":
		return valor > 0
	case "JEQ":
		return valor == 0
	case "JGE":
		return valor >= 0
	case "JLT":
		return valor < 0
	case "JNE":
		return valor != 0
	case "JLE":
		return valor <= 0
	case "JMP":
		return true
	default:
		return false
	}
}

// Topo retorna o valor no topo da pilha (RAM[RAM[SP]-1])
func (m *Maquina) Topo() int16 {
	return m.RAM[m.RAM[0]-1]
}
