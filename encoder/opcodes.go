package encoder

// opcodes is the static mnemonic-and-variant -> byte table (§4.10). It is
// an external contract and must be reproduced bit-for-bit; values are
// carried over unchanged from the reference implementation this system
// was distilled from.
var opcodes = map[string]byte{
	"HLT": 0x00,

	"CMP_char": 0x01, "CMP_uchar": 0x02, "CMP_short": 0x03, "CMP_ushort": 0x04,
	"CMP_int": 0x05, "CMP_uint": 0x06, "CMP_float": 0x07,

	"JMP": 0x08, "JE": 0x09, "JNE": 0x0A, "JLT": 0x0B, "JLE": 0x0C, "JGT": 0x0D, "JGE": 0x0E,

	"MOV_1B": 0x10, "MOV_2B": 0x11, "MOV_4B": 0x12,

	"LEA": 0x14,

	"ADD_char": 0x20, "ADD_uchar": 0x21, "ADD_short": 0x22, "ADD_ushort": 0x23,
	"ADD_int": 0x24, "ADD_uint": 0x25, "ADD_float": 0x26,

	"SUB_char": 0x28, "SUB_uchar": 0x29, "SUB_short": 0x2A, "SUB_ushort": 0x2B,
	"SUB_int": 0x2C, "SUB_uint": 0x2D, "SUB_float": 0x2E,

	"MUL_char": 0x30, "MUL_uchar": 0x31, "MUL_short": 0x32, "MUL_ushort": 0x33,
	"MUL_int": 0x34, "MUL_uint": 0x35, "MUL_float": 0x36,

	"IDIV_char": 0x38, "IDIV_uchar": 0x39, "IDIV_short": 0x3A, "IDIV_ushort": 0x3B,
	"IDIV_int": 0x3C, "IDIV_uint": 0x3D, "IDIV_float": 0x3E,

	"MOD_char": 0x40, "MOD_uchar": 0x41, "MOD_short": 0x42, "MOD_ushort": 0x43,
	"MOD_int": 0x44, "MOD_uint": 0x45, "MOD_float": 0x46,

	"EDIV_char": 0x48, "EDIV_uchar": 0x49, "EDIV_short": 0x4A, "EDIV_ushort": 0x4B,
	"EDIV_int": 0x4C, "EDIV_uint": 0x4D, "EDIV_float": 0x4E,

	"AND_1B": 0x50, "AND_2B": 0x51, "AND_4B": 0x52,
	"OR_1B": 0x54, "OR_2B": 0x55, "OR_4B": 0x56,
	"XOR_1B": 0x58, "XOR_2B": 0x59, "XOR_4B": 0x5A,
	"NOT_1B": 0x5C, "NOT_2B": 0x5D, "NOT_4B": 0x5E,
	"LSH_1B": 0x60, "LSH_2B": 0x61, "LSH_4B": 0x62,
	"RSH_1B": 0x64, "RSH_2B": 0x65, "RSH_4B": 0x66,
}

// lookupOpcode applies the §4.9 selection precedence: bare mnemonic, then
// mnemonic_datatype, then the width alias for the data type.
func lookupOpcode(mnemonic, dataType, widthAlias string) (byte, bool) {
	if code, ok := opcodes[mnemonic]; ok {
		return code, true
	}
	if code, ok := opcodes[mnemonic+"_"+dataType]; ok {
		return code, true
	}
	if code, ok := opcodes[mnemonic+"_"+widthAlias]; ok {
		return code, true
	}
	return 0, false
}
