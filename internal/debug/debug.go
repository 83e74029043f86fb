package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
)

var Enabled bool = false

// Saida recebe as mensagens de usuário (avisos, erros e sucesso)
var Saida io.Writer = os.Stderr

func Printf(format string, args ...interface{}) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

func Println(args ...interface{}) {
	if Enabled {
		fmt.Println(args...)
	}
}

func Print(args ...interface{}) {
	if Enabled {
		fmt.Print(args...)
	}
}

// Dump imprime a estrutura completa dos valores (comandos, relatórios)
func Dump(valores ...interface{}) {
	if Enabled {
		fmt.Print(spew.Sdump(valores...))
	}
}

// Aviso imprime um aviso em amarelo, independente do modo debug
func Aviso(format string, args ...interface{}) {
	fmt.Fprintln(Saida, aurora.Yellow("Aviso: "+fmt.Sprintf(format, args...)))
}

// Erro imprime um erro em vermelho
func Erro(format string, args ...interface{}) {
	fmt.Fprintln(Saida, aurora.Red("Erro: "+fmt.Sprintf(format, args...)))
}

// Sucesso imprime uma confirmação em verde na saída padrão
func Sucesso(format string, args ...interface{}) {
	fmt.Println(aurora.Green(fmt.Sprintf(format, args...)))
}
