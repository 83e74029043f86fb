package compiler

import (
	"io"
	"strings"

	"github.com/khevencolino/tradutor-vm/internal/backends"
	"github.com/khevencolino/tradutor-vm/internal/backends/assembly/hack"
	"github.com/khevencolino/tradutor-vm/internal/debug"
	"github.com/khevencolino/tradutor-vm/internal/lexer"
	"github.com/khevencolino/tradutor-vm/internal/parser"
	"github.com/khevencolino/tradutor-vm/internal/registry"
	"github.com/khevencolino/tradutor-vm/internal/utils"
)

// Opcoes reúne as escolhas da linha de comando
type Opcoes struct {
	Backend     string // hack | llvm
	Arch        string // Arquitetura do backend assembly
	Saida       string // Caminho explícito, só para um arquivo
	Comentarios bool   // Prefixa cada bloco com "// <linha vm>"
	Arvore      bool   // Imprime a árvore de comandos
}

// OpcoesPadrao retorna as opções usadas quando nenhuma flag é passada
func OpcoesPadrao() Opcoes {
	return Opcoes{
		Backend:     "hack",
		Arch:        "hack",
		Comentarios: true,
	}
}

// Compiler coordena leitura, análise, tradução e escrita
type Compiler struct {
	opcoes       Opcoes
	analisador   *AnalisadorPilha
	visualizador *parser.VisualizadorArvore
}

// NovoCompilador cria um novo compilador
func NovoCompilador(opcoes Opcoes) *Compiler {
	return &Compiler{
		opcoes:       opcoes,
		analisador:   NovoAnalisadorPilha(registry.RegistroGlobal),
		visualizador: parser.NovoVisualizador(),
	}
}

// CompilarArquivo traduz um arquivo .vm ou todos os .vm de um diretório.
// Para no primeiro erro; unidades já escritas permanecem.
func (c *Compiler) CompilarArquivo(entrada string) ([]backends.ResultadoTraducao, error) {
	extensao, err := ExtensaoSaida(c.opcoes.Backend, c.opcoes.Arch)
	if err != nil {
		return nil, err
	}

	fontes, err := NovoResolvedorFontes(extensao, c.opcoes.Saida).ResolverEntradas(entrada)
	if err != nil {
		return nil, err
	}

	var resultados []backends.ResultadoTraducao
	for _, fonte := range fontes {
		resultado, err := c.traduzirFonte(fonte)
		if err != nil {
			return resultados, err
		}
		resultados = append(resultados, resultado)
	}
	return resultados, nil
}

// traduzirFonte traduz tudo em memória e só então cria o arquivo de saída,
// para que uma entrada inválida não deixe saída parcial
func (c *Compiler) traduzirFonte(fonte Fonte) (backends.ResultadoTraducao, error) {
	debug.Printf("📄 Traduzindo %s -> %s\n", fonte.Caminho, fonte.Saida)

	linhas, err := utils.LerLinhas(fonte.Caminho)
	if err != nil {
		return backends.ResultadoTraducao{}, err
	}

	backend, err := NovoGerador(c.opcoes.Backend, c.opcoes.Arch, fonte.NomeBase)
	if err != nil {
		return backends.ResultadoTraducao{}, err
	}

	var texto strings.Builder
	resultado, err := c.TraduzirLinhas(fonte.NomeBase, linhas, backend, &texto)
	if err != nil {
		return backends.ResultadoTraducao{}, err
	}

	escritor, err := utils.NovoEscritor(fonte.Saida)
	if err != nil {
		return backends.ResultadoTraducao{}, err
	}
	if _, err := escritor.WriteString(texto.String()); err != nil {
		escritor.Fechar()
		return backends.ResultadoTraducao{}, err
	}
	if err := escritor.Fechar(); err != nil {
		return backends.ResultadoTraducao{}, err
	}

	resultado.ArquivoEntrada = fonte.Caminho
	resultado.ArquivoSaida = escritor.Nome()
	return resultado, nil
}

// TraduzirLinhas carrega e valida todas as linhas, depois dirige o cursor
// comando a comando, acrescentando cada bloco em saida. Nenhum texto é
// escrito se alguma linha for inválida.
func (c *Compiler) TraduzirLinhas(nomeBase string, linhas []string, backend backends.Backend, saida io.StringWriter) (backends.ResultadoTraducao, error) {
	resultado := backends.ResultadoTraducao{}

	p := parser.NovoParser()
	if err := p.Carregar(linhas); err != nil {
		return resultado, err
	}

	if debug.Enabled {
		debug.Println("Instruções carregadas:")
		lexer.ImprimirTokens(p.Tokens())
	}

	comandos, err := p.Comandos()
	if err != nil {
		return resultado, err
	}
	debug.Dump(comandos)

	relatorio := c.analisador.Analisar(comandos)
	for _, aviso := range relatorio.Avisos {
		debug.Aviso("%s: %s", nomeBase, aviso)
	}
	debug.Printf("📊 Pilha: profundidade máxima %d, final %d\n", relatorio.ProfundidadeMaxima, relatorio.ProfundidadeFinal)

	if c.opcoes.Arvore {
		c.visualizador.ImprimirArvore(nomeBase, comandos)
	}

	comentador, comenta := backend.(backends.Comentador)
	comenta = comenta && c.opcoes.Comentarios

	linhasGeradas := 0
	escrever := func(texto string) error {
		if texto == "" {
			return nil
		}
		linhasGeradas += strings.Count(texto, "\n")
		_, err := saida.WriteString(texto)
		return err
	}

	for p.TemMais() {
		if err := p.Avancar(); err != nil {
			return resultado, err
		}
		comando, err := p.Classificar()
		if err != nil {
			return resultado, err
		}

		bloco, err := backend.Traduzir(comando)
		if err != nil {
			return resultado, err
		}
		if debug.Enabled && bloco != "" {
			debug.Print(hack.Colorir(bloco))
		}

		if comenta {
			if err := escrever(comentador.Comentar(comando.Texto)); err != nil {
				return resultado, err
			}
		}
		if err := escrever(bloco); err != nil {
			return resultado, err
		}
		resultado.Comandos++
	}

	final, err := backend.Finalizar()
	if err != nil {
		return resultado, err
	}
	if err := escrever(final); err != nil {
		return resultado, err
	}

	resultado.LinhasGeradas = linhasGeradas
	resultado.Sucesso = true
	resultado.Message = backend.GetName()
	return resultado, nil
}
