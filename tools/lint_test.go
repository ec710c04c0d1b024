package tools

import (
	"testing"
)

func TestLintUnusedVariable(t *testing.T) {
	instructions := buildToolInstructions(t, "x VAR char 5\ny VAR char 9", "MOV eax x")
	addresses := map[string]uint32{"x": 9, "y": 10}

	issues := Lint(instructions, addresses, nil)

	found := false
	for _, issue := range issues {
		if issue.Code == "UNUSED_SYMBOL" {
			found = true
		}
	}
	if !found {
		t.Error("expected an UNUSED_SYMBOL finding for y")
	}
}

func TestLintNoFindingsWhenAllReferenced(t *testing.T) {
	instructions := buildToolInstructions(t, "x VAR char 5", "MOV eax x")
	addresses := map[string]uint32{"x": 3}

	issues := Lint(instructions, addresses, &LintOptions{CheckUnusedSymbols: true})

	for _, issue := range issues {
		if issue.Code == "UNUSED_SYMBOL" {
			t.Errorf("unexpected unused-symbol finding: %v", issue)
		}
	}
}

func TestLintMnemonicCase(t *testing.T) {
	// Mnemonics always come back upper-case from the text parser, so the
	// case check should never fire on normally-parsed input.
	instructions := buildToolInstructions(t, "", "MOV eax 10")
	issues := Lint(instructions, nil, &LintOptions{CheckUppercase: true})
	for _, issue := range issues {
		if issue.Code == "MNEMONIC_CASE" {
			t.Errorf("unexpected mnemonic-case finding: %v", issue)
		}
	}
}
