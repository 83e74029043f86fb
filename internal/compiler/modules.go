package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khevencolino/tradutor-vm/internal/utils"
)

// ExtensaoVM é a extensão dos arquivos de entrada
const ExtensaoVM = ".vm"

// Fonte é uma unidade de tradução: um arquivo .vm e seu destino
type Fonte struct {
	Caminho  string
	NomeBase string // Prefixo das variáveis static
	Saida    string
}

// ResolvedorFontes descobre os arquivos .vm de uma entrada e calcula os
// caminhos de saída
type ResolvedorFontes struct {
	extensaoSaida  string
	saidaExplicita string
}

// NovoResolvedorFontes cria um resolvedor; saida vazia usa o mesmo
// diretório da entrada
func NovoResolvedorFontes(extensaoSaida, saida string) *ResolvedorFontes {
	return &ResolvedorFontes{
		extensaoSaida:  extensaoSaida,
		saidaExplicita: saida,
	}
}

// ResolverEntradas aceita um arquivo .vm ou um diretório. Num diretório,
// cada .vm vira uma unidade separada, em ordem alfabética.
func (r *ResolvedorFontes) ResolverEntradas(entrada string) ([]Fonte, error) {
	info, err := os.Stat(entrada)
	if err != nil {
		return nil, utils.NovoErroES(fmt.Sprintf("entrada '%s' inacessível", entrada), err)
	}

	if !info.IsDir() {
		if !ehArquivoVM(entrada) {
			return nil, fmt.Errorf("arquivo '%s' não tem extensão %s", entrada, ExtensaoVM)
		}
		return []Fonte{r.novaFonte(entrada, r.saidaExplicita)}, nil
	}

	if r.saidaExplicita != "" {
		return nil, fmt.Errorf("-saida só pode ser usado com um único arquivo de entrada")
	}

	entradas, err := os.ReadDir(entrada)
	if err != nil {
		return nil, utils.NovoErroES(fmt.Sprintf("erro ao listar '%s'", entrada), err)
	}

	var fontes []Fonte
	for _, e := range entradas {
		if e.IsDir() || !ehArquivoVM(e.Name()) {
			continue
		}
		fontes = append(fontes, r.novaFonte(filepath.Join(entrada, e.Name()), ""))
	}

	if len(fontes) == 0 {
		return nil, fmt.Errorf("nenhum arquivo %s encontrado em '%s'", ExtensaoVM, entrada)
	}
	return fontes, nil
}

func (r *ResolvedorFontes) novaFonte(caminho, saida string) Fonte {
	if saida == "" {
		saida = utils.TrocarExtensao(caminho, r.extensaoSaida)
	}
	return Fonte{
		Caminho:  caminho,
		NomeBase: utils.NomeBase(caminho),
		Saida:    saida,
	}
}

func ehArquivoVM(nome string) bool {
	return strings.EqualFold(filepath.Ext(nome), ExtensaoVM)
}
