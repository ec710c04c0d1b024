package tools

import "testing"

func TestGenerateMarksDefinitionAndReferences(t *testing.T) {
	instructions := buildToolInstructions(t, "count VAR int 0", "loop JMP loop")
	symbols := Generate(instructions, map[string]uint32{"count": 0, "loop": 4})

	count, ok := symbols["count"]
	if !ok {
		t.Fatal("expected count symbol")
	}
	if !count.IsVariable {
		t.Error("expected count to be marked as a variable")
	}
	if count.Definition == nil {
		t.Error("expected count to have a definition")
	}
	if len(count.References) != 0 {
		t.Errorf("expected count to have no references, got %d", len(count.References))
	}

	loop, ok := symbols["loop"]
	if !ok {
		t.Fatal("expected loop symbol")
	}
	if loop.Definition == nil {
		t.Error("expected loop to have a definition from its label")
	}
	if len(loop.References) != 1 {
		t.Fatalf("expected one reference to loop, got %d", len(loop.References))
	}
	if loop.References[0].Type != RefBranch {
		t.Errorf("expected branch reference, got %v", loop.References[0].Type)
	}
}

func TestUnreferencedFindsOnlyUnusedDefinitions(t *testing.T) {
	instructions := buildToolInstructions(t, "used VAR int 0\nunused VAR int 0", "MOV eax used")
	symbols := Generate(instructions, nil)

	unused := Unreferenced(symbols)
	if len(unused) != 1 || unused[0] != "unused" {
		t.Errorf("expected only 'unused' to be unreferenced, got %v", unused)
	}
}
