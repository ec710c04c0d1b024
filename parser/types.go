package parser

import "strings"

// DataType is one of the seven recognized value types. It drives both
// operand width and, together with a mnemonic, opcode selection.
type DataType int

const (
	Char DataType = iota
	UChar
	Short
	UShort
	Int
	UInt
	Float
)

func (d DataType) String() string {
	switch d {
	case Char:
		return "char"
	case UChar:
		return "uchar"
	case Short:
		return "short"
	case UShort:
		return "ushort"
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// dataTypes maps the lower-cased keyword to its DataType.
var dataTypes = map[string]DataType{
	"char":   Char,
	"uchar":  UChar,
	"short":  Short,
	"ushort": UShort,
	"int":    Int,
	"uint":   UInt,
	"float":  Float,
}

// ParseDataType recognizes a bare type keyword (case-insensitive).
func ParseDataType(s string) (DataType, bool) {
	dt, ok := dataTypes[strings.ToLower(s)]
	return dt, ok
}

// widthAliases maps a width keyword to the representative DataType used
// for size/opcode-fallback purposes (§4.5/§4.9).
var widthAliases = map[string]DataType{
	"1B": Char,
	"2B": Short,
	"4B": Int,
}

// ParseWidthAlias recognizes 1B/2B/4B (case-insensitive on the letter).
func ParseWidthAlias(s string) (DataType, bool) {
	dt, ok := widthAliases[strings.ToUpper(s)]
	return dt, ok
}

// Size returns the number of bytes a value of this type occupies.
func (d DataType) Size() int {
	switch d {
	case Char, UChar:
		return 1
	case Short, UShort:
		return 2
	case Int, UInt, Float:
		return 4
	default:
		return 0
	}
}

// WidthAliasFor returns the 1B/2B/4B name used when the opcode table has
// no entry for mnemonic+datatype and the encoder must fall back to a
// width-qualified variant (§4.9).
func (d DataType) WidthAliasFor() string {
	switch d {
	case Char, UChar:
		return "1B"
	case Short, UShort:
		return "2B"
	case Int, UInt, Float:
		return "4B"
	default:
		return ""
	}
}

// Config is the meta-section configuration record: a mapping of string
// keys to string values, layered over built-in defaults, preserving
// insertion order of the *first* occurrence of a key even when a later
// line overwrites its value (§9 "duplicate meta keys").
type Config struct {
	order  []string
	values map[string]string
}

// NewConfig returns a Config seeded with the built-in defaults.
func NewConfig() *Config {
	c := &Config{values: make(map[string]string)}
	c.Set("mem_amt", "4")
	return c
}

// Set stores key=value. If key was already present, its value is
// overwritten but its position in Keys() is unchanged.
func (c *Config) Set(key, value string) {
	if _, exists := c.values[key]; !exists {
		c.order = append(c.order, key)
	}
	c.values[key] = value
}

// Get returns the value for key and whether it was present.
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns every key in insertion order (defaults first).
func (c *Config) Keys() []string {
	return c.order
}
