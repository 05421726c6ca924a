package keyword

// Snippets maps a statement pragma to the LSP snippet inserted when the
// pragma is chosen from a completion list.
var Snippets = map[string]string{
	Cpu:           "cpu {\n    ${1}\n};\n",
	Config:        "config {\n    ${1}\n};\n",
	AcrAliases[0]: "register ${1} {\n    ${2}\n};\n",
	AcrAliases[1]: "reg ${1} {\n    ${2}\n};\n",
	AcmAliases[0]: "${1|rom,ram|} ${2} {\n    ${3}\n};\n",
	AcmAliases[1]: "${1|rom,ram|} ${2} {\n    ${3}\n};\n",
}

// Snippet returns the snippet for label, or "" when the label is inserted
// verbatim.
func Snippet(label string) string {
	return Snippets[label]
}
