package tools

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// HexDump renders bytes as a classic offset/hex/ASCII dump, bytesPerLine
// bytes to a row. When color output is enabled, the offset column is
// dimmed and non-printable bytes in the ASCII gutter are grayed out.
func HexDump(data []byte, bytesPerLine int, colorOutput bool) string {
	if bytesPerLine <= 0 {
		bytesPerLine = 16
	}

	offsetColor := color.New(color.FgHiBlack)
	dimColor := color.New(color.FgHiBlack)

	var out strings.Builder
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		row := data[offset:end]

		if colorOutput {
			out.WriteString(offsetColor.Sprintf("%08X", offset))
		} else {
			fmt.Fprintf(&out, "%08X", offset)
		}
		out.WriteString("  ")

		for i := 0; i < bytesPerLine; i++ {
			if i < len(row) {
				fmt.Fprintf(&out, "%02X ", row[i])
			} else {
				out.WriteString("   ")
			}
			if i == bytesPerLine/2-1 {
				out.WriteString(" ")
			}
		}

		out.WriteString(" |")
		for _, b := range row {
			ch := "."
			printable := b >= 0x20 && b < 0x7f
			if printable {
				ch = string(rune(b))
			}
			if colorOutput && !printable {
				out.WriteString(dimColor.Sprint(ch))
			} else {
				out.WriteString(ch)
			}
		}
		out.WriteString("|\n")
	}

	return out.String()
}
