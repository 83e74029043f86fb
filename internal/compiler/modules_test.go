package compiler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolverEntradasArquivo(t *testing.T) {
	dir := t.TempDir()
	caminho := filepath.Join(dir, "Main.vm")
	escreverArquivo(t, caminho, "add\n")

	fontes, err := NovoResolvedorFontes(".asm", "").ResolverEntradas(caminho)
	if err != nil {
		t.Fatalf("ResolverEntradas: %v", err)
	}
	want := Fonte{Caminho: caminho, NomeBase: "Main", Saida: filepath.Join(dir, "Main.asm")}
	if len(fontes) != 1 || fontes[0] != want {
		t.Errorf("ResolverEntradas(%q) = %+v; want [%+v]", caminho, fontes, want)
	}
}

func TestResolverEntradasDiretorioOrdenado(t *testing.T) {
	dir := t.TempDir()
	for _, nome := range []string{"Zeta.vm", "Alfa.vm", "notas.md"} {
		escreverArquivo(t, filepath.Join(dir, nome), "")
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.vm"), 0755); err != nil {
		t.Fatal(err)
	}

	fontes, err := NovoResolvedorFontes(".ll", "").ResolverEntradas(dir)
	if err != nil {
		t.Fatalf("ResolverEntradas: %v", err)
	}

	nomes := make([]string, 0, len(fontes))
	for _, f := range fontes {
		nomes = append(nomes, f.NomeBase)
	}
	if len(nomes) != 2 || nomes[0] != "Alfa" || nomes[1] != "Zeta" {
		t.Errorf("NomeBase = %v; want [Alfa Zeta]", nomes)
	}
	if fontes[0].Saida != filepath.Join(dir, "Alfa.ll") {
		t.Errorf("Saida = %s; want Alfa.ll", fontes[0].Saida)
	}
}

func TestResolverEntradasErros(t *testing.T) {
	dir := t.TempDir()
	texto := filepath.Join(dir, "leia.txt")
	escreverArquivo(t, texto, "")
	vazio := filepath.Join(dir, "vazio")
	if err := os.Mkdir(vazio, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		nome    string
		entrada string
		saida   string
	}{
		{"inexistente", filepath.Join(dir, "nada.vm"), ""},
		{"extensão errada", texto, ""},
		{"diretório sem vm", vazio, ""},
		{"saida com diretório", dir, "x.asm"},
	}
	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			if _, err := NovoResolvedorFontes(".asm", tt.saida).ResolverEntradas(tt.entrada); err == nil {
				t.Errorf("ResolverEntradas(%q) = nil; want erro", tt.entrada)
			}
		})
	}
}
