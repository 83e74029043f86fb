package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/khevencolino/tradutor-vm/internal/backends/assembly"
	"github.com/khevencolino/tradutor-vm/internal/compiler"
	"github.com/khevencolino/tradutor-vm/internal/debug"
	"github.com/khevencolino/tradutor-vm/internal/registry"
)

func main() {
	entrada, opcoes, showHelp, err := processarArgumentos(os.Args[1:])
	if err != nil {
		debug.Erro("%v", err)
		os.Exit(1)
	}

	if showHelp {
		mostrarAjuda()
		return
	}

	compilador := compiler.NovoCompilador(opcoes)

	resultados, err := compilador.CompilarArquivo(entrada)
	for _, r := range resultados {
		debug.Sucesso("%s -> %s (%d comandos, %d linhas, %s)", r.ArquivoEntrada, r.ArquivoSaida, r.Comandos, r.LinhasGeradas, r.Message)
	}
	if err != nil {
		debug.Erro("%v", err)
		os.Exit(1)
	}
}

func processarArgumentos(args []string) (string, compiler.Opcoes, bool, error) {
	opcoes := compiler.OpcoesPadrao()
	flags := flag.NewFlagSet("tradutor", flag.ContinueOnError)

	// Define flags
	flags.StringVar(&opcoes.Backend, "backend", opcoes.Backend, "Backend a ser usado (hack, llvm)")
	flags.StringVar(&opcoes.Arch, "arch", opcoes.Arch, "Arquitetura para assembly (hack)")
	flags.StringVar(&opcoes.Saida, "saida", "", "Arquivo de saída (só com um arquivo de entrada)")
	flags.BoolVar(&opcoes.Comentarios, "comentarios", opcoes.Comentarios, "Prefixa cada bloco com a linha VM")
	flags.BoolVar(&opcoes.Arvore, "arvore", false, "Imprime a árvore de comandos")
	flags.BoolVar(&debug.Enabled, "debug", false, "Ativar mensagens de debug")
	help := flags.Bool("help", false, "Mostra ajuda")

	// Parse flags
	if err := flags.Parse(args); err != nil {
		return "", opcoes, false, err
	}

	// Verifica se help foi solicitado
	if *help {
		return "", opcoes, true, nil
	}

	// Verifica se a entrada foi fornecida
	if flags.NArg() < 1 {
		return "", opcoes, false, fmt.Errorf("arquivo ou diretório de entrada requerido")
	}

	return flags.Arg(0), opcoes, false, nil
}

func mostrarAjuda() {
	var operadores strings.Builder
	for _, nome := range registry.RegistroGlobal.ListarOperadores() {
		operadores.WriteString("    " + registry.RegistroGlobal.Descrever(nome) + "\n")
	}

	fmt.Printf(`Tradutor VM - Máquina virtual de pilha para assembly Hack

USO:
    tradutor [flags] <arquivo.vm | diretório>

FLAGS:
    -backend=<tipo>     Backend a ser usado (padrão: hack)
    -arch=<arquitetura> Arquitetura para assembly (padrão: hack)
    -saida=<arquivo>    Arquivo de saída (padrão: entrada com a extensão do backend)
    -comentarios        Prefixa cada bloco com "// <linha vm>" (padrão: true)
    -arvore             Imprime a árvore de comandos
    -debug              Ativar mensagens de debug
    -help               Mostra esta ajuda

BACKENDS DISPONÍVEIS:

hack, assembly, asm
    - Assembly Hack (.asm)
    - Um bloco de instruções por comando VM

llvm, llvmir, ir
    - LLVM IR (.ll)
    - Mesma RAM e ponteiro de pilha do Hack, numa função por arquivo

ARQUITETURAS SUPORTADAS PARA ASSEMBLY:
    - %s

COMANDOS ARITMÉTICOS:
%s
ACESSO À MEMÓRIA:
    push <segmento> <índice>
    pop  <segmento> <índice>   (pop constant não existe)
    segmentos: constant local argument this that static temp pointer

EXEMPLOS:
    tradutor Prog.vm                        # Gera Prog.asm
    tradutor projeto/                       # Um .asm por arquivo .vm
    tradutor -backend=llvm Prog.vm          # Gera Prog.ll
    tradutor -comentarios=false Prog.vm     # Sem comentários
    tradutor -debug -arvore Prog.vm         # Com mensagens de debug
`, strings.Join(assembly.Arquiteturas(), ", "), operadores.String())
}
