package parser

import "strings"

// mnemonicNames is the closed set of bare instruction mnemonics (§4.10).
// It is kept here, rather than alongside the opcode table in package
// encoder, because the Text Parser needs it to tell a label from a
// mnemonic (§4.5) and must not import the encoder.
var mnemonicNames = map[string]bool{
	"HLT": true,
	"CMP": true,
	"JMP": true, "JE": true, "JNE": true, "JLT": true, "JLE": true, "JGT": true, "JGE": true,
	"MOV": true,
	"LEA": true,
	"ADD": true, "SUB": true, "MUL": true, "IDIV": true, "MOD": true, "EDIV": true,
	"AND": true, "OR": true, "XOR": true, "NOT": true,
	"LSH": true, "RSH": true,
}

// IsMnemonic reports whether token names a known mnemonic, case-insensitive.
func IsMnemonic(token string) bool {
	return mnemonicNames[strings.ToUpper(token)]
}
