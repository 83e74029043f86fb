package maquina

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/khevencolino/tradutor-vm/internal/prelude"
)

var padraoSimbolo = regexp.MustCompile(`^[A-Za-z_.$:][A-Za-z0-9_.$:]*$`)

// Programa é o resultado da montagem: ROM e tabela de símbolos
type Programa struct {
	Instrucoes []Instrucao
	Simbolos   map[string]int
}

// Montar converte texto assembly Hack em instruções, em duas passadas:
// rótulos primeiro, depois instruções com variáveis alocadas a partir de 16.
func Montar(fonte string) (*Programa, error) {
	linhas := strings.Split(fonte, "\n")
	simbolos := make(map[string]int)

	// Primeira passada: rótulos
	endereco := 0
	for n, bruta := range linhas {
		texto := limpar(bruta)
		if texto == "" {
			continue
		}
		if strings.HasPrefix(texto, "(") {
			if !strings.HasSuffix(texto, ")") {
				return nil, fmt.Errorf("linha %d: rótulo malformado '%s'", n+1, texto)
			}
			rotulo := texto[1 : len(texto)-1]
			if !padraoSimbolo.MatchString(rotulo) {
				return nil, fmt.Errorf("linha %d: rótulo inválido '%s'", n+1, rotulo)
			}
			if _, existe := simbolos[rotulo]; existe {
				return nil, fmt.Errorf("linha %d: rótulo '%s' duplicado", n+1, rotulo)
			}
			simbolos[rotulo] = endereco
			continue
		}
		endereco++
	}

	// Segunda passada: instruções
	proximaVariavel := prelude.PrimeiraVar
	programa := &Programa{Simbolos: simbolos}
	for n, bruta := range linhas {
		texto := limpar(bruta)
		if texto == "" || strings.HasPrefix(texto, "(") {
			continue
		}

		if strings.HasPrefix(texto, "@") {
			operando := texto[1:]
			valor, err := strconv.Atoi(operando)
			if err != nil {
				if !padraoSimbolo.MatchString(operando) {
					return nil, fmt.Errorf("linha %d: símbolo inválido '%s'", n+1, operando)
				}
				if endereco, ok := prelude.Padrao.Endereco(operando); ok {
					valor = endereco
				} else if endereco, ok := simbolos[operando]; ok {
					valor = endereco
				} else {
					simbolos[operando] = proximaVariavel
					valor = proximaVariavel
					proximaVariavel++
				}
			}
			if valor < 0 || valor > prelude.LimiteImedia {
				return nil, fmt.Errorf("linha %d: valor %d fora do intervalo de @", n+1, valor)
			}
			programa.Instrucoes = append(programa.Instrucoes, Instrucao{Tipo: INSTRUCAO_A, Valor: int16(valor), Linha: n + 1})
			continue
		}

		instrucao, err := montarC(texto)
		if err != nil {
			return nil, fmt.Errorf("linha %d: %v", n+1, err)
		}
		instrucao.Linha = n + 1
		programa.Instrucoes = append(programa.Instrucoes, instrucao)
	}

	return programa, nil
}

// montarC separa dest=comp;jump e valida cada campo
func montarC(texto string) (Instrucao, error) {
	instrucao := Instrucao{Tipo: INSTRUCAO_C}

	resto := texto
	if destino, depois, ok := strings.Cut(resto, "="); ok {
		instrucao.Destino = destino
		resto = depois
	}
	if calculo, salto, ok := strings.Cut(resto, ";"); ok {
		instrucao.Calculo = calculo
		instrucao.Salto = salto
	} else {
		instrucao.Calculo = resto
	}

	if !destinosValidos[instrucao.Destino] {
		return Instrucao{}, fmt.Errorf("destino inválido '%s'", instrucao.Destino)
	}
	if !calculosValidos[instrucao.Calculo] {
		return Instrucao{}, fmt.Errorf("cálculo inválido '%s'", instrucao.Calculo)
	}
	if !saltosValidos[instrucao.Salto] {
		return Instrucao{}, fmt.Errorf("salto inválido '%s'", instrucao.Salto)
	}
	return instrucao, nil
}

// limpar remove comentários e todos os espaços da linha
func limpar(linha string) string {
	if i := strings.Index(linha, "//"); i >= 0 {
		linha = linha[:i]
	}
	return strings.Join(strings.Fields(linha), "")
}
