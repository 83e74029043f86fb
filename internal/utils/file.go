package utils

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LerLinhas lê um arquivo e retorna suas linhas, sem os terminadores
func LerLinhas(nomeArquivo string) ([]string, error) {
	arquivo, err := os.Open(nomeArquivo)
	if err != nil {
		return nil, NovoErroES("erro ao abrir arquivo "+nomeArquivo, err)
	}
	defer arquivo.Close()

	var linhas []string
	scanner := bufio.NewScanner(arquivo)
	for scanner.Scan() {
		linhas = append(linhas, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, NovoErroES("erro ao ler arquivo "+nomeArquivo, err)
	}
	return linhas, nil
}

// NomeBase retorna o nome do arquivo sem diretório e sem extensão
func NomeBase(caminho string) string {
	base := filepath.Base(caminho)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TrocarExtensao substitui a extensão do caminho (mantendo o diretório)
func TrocarExtensao(caminho, extensao string) string {
	return strings.TrimSuffix(caminho, filepath.Ext(caminho)) + extensao
}

// Escritor é o destino sequencial, somente de acréscimo, do código gerado
type Escritor struct {
	nome    string
	arquivo *os.File
	buffer  *bufio.Writer
}

// NovoEscritor cria (ou trunca) o arquivo de saída
func NovoEscritor(nomeArquivo string) (*Escritor, error) {
	// Cria o diretório se não existir
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return nil, NovoErroES("erro ao criar diretório "+diretorio, err)
	}

	arquivo, err := os.Create(nomeArquivo)
	if err != nil {
		return nil, NovoErroES("erro ao criar arquivo "+nomeArquivo, err)
	}

	return &Escritor{
		nome:    nomeArquivo,
		arquivo: arquivo,
		buffer:  bufio.NewWriter(arquivo),
	}, nil
}

// WriteString acrescenta texto ao final da saída
func (e *Escritor) WriteString(texto string) (int, error) {
	n, err := e.buffer.WriteString(texto)
	if err != nil {
		return n, NovoErroES("erro ao escrever em "+e.nome, err)
	}
	return n, nil
}

// Fechar descarrega o buffer e fecha o arquivo
func (e *Escritor) Fechar() error {
	if err := e.buffer.Flush(); err != nil {
		e.arquivo.Close()
		return NovoErroES("erro ao descarregar "+e.nome, err)
	}
	if err := e.arquivo.Close(); err != nil {
		return NovoErroES("erro ao fechar "+e.nome, err)
	}
	return nil
}

// Nome retorna o caminho do arquivo de saída
func (e *Escritor) Nome() string {
	return e.nome
}
