package parser

import "os"

// ReadSourceFile reads an assembly source file as UTF-8 text. There is no
// preprocessor step here: macro expansion and include directives are
// out of scope for this assembler.
func ReadSourceFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return "", err
	}
	return string(content), nil
}
