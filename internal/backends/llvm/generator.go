package llvm

// GetGeneratorInfo retorna informações sobre o gerador LLVM
func GetGeneratorInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":        "LLVM IR",
		"description": "Gerador de LLVM IR sobre uma RAM de 16 bits no layout Hack",
		"extension":   ".ll",
		"executable":  false,
		"requires": []string{
			"llvm-tools (opcional, para otimizar ou inspecionar o IR)",
		},
	}
}
