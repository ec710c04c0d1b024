package parser

import "testing"

func TestClassifyOperandRegister(t *testing.T) {
	op, err := ClassifyOperand("eax", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reg, ok := op.(*RegisterOperand)
	if !ok {
		t.Fatalf("got %T, want *RegisterOperand", op)
	}
	if reg.Code != 0xA0 {
		t.Errorf("code = 0x%X, want 0xA0", reg.Code)
	}
	if op.Designation() != 1 || op.EncodedLength() != 1 {
		t.Errorf("designation/length = %d/%d, want 1/1", op.Designation(), op.EncodedLength())
	}
}

func TestImmediateWidthRule(t *testing.T) {
	cases := []struct {
		value int64
		width int
	}{
		{-128, 1}, {255, 1}, {0, 1},
		{-129, 2}, {256, 2}, {-32768, 2}, {65535, 2},
		{-32769, 4}, {65536, 4},
	}
	for _, tc := range cases {
		op := NewIntImmediate(tc.value)
		if op.Width != tc.width {
			t.Errorf("NewIntImmediate(%d).Width = %d, want %d", tc.value, op.Width, tc.width)
		}
		if op.EncodedLength() != tc.width {
			t.Errorf("EncodedLength() = %d, want %d", op.EncodedLength(), tc.width)
		}
	}
}

func TestFloatImmediateAlwaysFourBytes(t *testing.T) {
	op := NewFloatImmediate(3.25)
	if op.Width != 4 || op.Designation() != 4 {
		t.Errorf("float immediate width/designation = %d/%d, want 4/4", op.Width, op.Designation())
	}
	b, err := op.EncodeBytes()
	if err != nil || len(b) != 4 {
		t.Fatalf("EncodeBytes() = %v, %v", b, err)
	}
}

func TestClassifyOperandAddress(t *testing.T) {
	op, err := ClassifyOperand("my_var", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr, ok := op.(*AddressOperand)
	if !ok {
		t.Fatalf("got %T, want *AddressOperand", op)
	}
	if addr.Symbol != "my_var" || addr.Resolved {
		t.Errorf("unexpected address operand: %+v", addr)
	}
	if op.EncodedLength() != 4 {
		t.Errorf("address length = %d, want 4", op.EncodedLength())
	}
}

func TestAddressOperandAlwaysFourBytesRegardlessOfValue(t *testing.T) {
	small := &AddressOperand{Resolved: true, Address: 1}
	large := &AddressOperand{Resolved: true, Address: 0xFFFFFFFF}
	if small.EncodedLength() != 4 || large.EncodedLength() != 4 {
		t.Fatal("address operand length must always be 4")
	}
	sb, _ := small.EncodeBytes()
	lb, _ := large.EncodeBytes()
	if len(sb) != 4 || len(lb) != 4 {
		t.Fatalf("encoded bytes: %d, %d", len(sb), len(lb))
	}
}

func TestClassifyOperandArithmeticShapes(t *testing.T) {
	cases := []struct {
		token      string
		designation int
		length     int
	}{
		{"[eax]", 6, 1},
		{"[eax*4]", 7, 2},
		{"[eax+4]", 8, 2},
		{"[eax*4+ebx]", 9, 3},
		{"[eax+4*ebx]", 10, 3},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			op, err := ClassifyOperand(tc.token, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if op.Designation() != tc.designation {
				t.Errorf("designation = %d, want %d", op.Designation(), tc.designation)
			}
			if op.EncodedLength() != tc.length {
				t.Errorf("length = %d, want %d", op.EncodedLength(), tc.length)
			}
			b, err := op.EncodeBytes()
			if err != nil {
				t.Fatalf("EncodeBytes error: %v", err)
			}
			if len(b) != tc.length {
				t.Errorf("encoded %d bytes, want %d", len(b), tc.length)
			}
		})
	}
}

func TestArithmeticOperandEaxTimes4PlusEbx(t *testing.T) {
	op, err := ClassifyOperand("[eax*4+ebx]", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := op.EncodeBytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xA0, 0x04, 0xB0}
	if len(b) != len(want) {
		t.Fatalf("got %v, want %v", b, want)
	}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("byte %d = 0x%02X, want 0x%02X", i, b[i], want[i])
		}
	}
}

func TestArithmeticOperandRejectsBadScalar(t *testing.T) {
	_, err := ClassifyOperand("[eax*3]", 1)
	if err == nil {
		t.Fatal("expected InvalidArithmetic error for scalar 3")
	}
	perr := err.(*Error)
	if perr.Kind != ErrInvalidArithmetic {
		t.Errorf("kind = %v, want ErrInvalidArithmetic", perr.Kind)
	}
}

func TestClassifyOperandInvalid(t *testing.T) {
	_, err := ClassifyOperand("1bad", 1)
	if err == nil {
		t.Fatal("expected InvalidOperand error")
	}
	perr := err.(*Error)
	if perr.Kind != ErrInvalidOperand {
		t.Errorf("kind = %v, want ErrInvalidOperand", perr.Kind)
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	for name, code := range registers {
		op, err := ClassifyOperand(name, 1)
		if err != nil {
			t.Fatalf("ClassifyOperand(%s): %v", name, err)
		}
		b, err := op.EncodeBytes()
		if err != nil || len(b) != 1 || b[0] != code {
			t.Errorf("register %s encoded to %v, want [%#x]", name, b, code)
		}
	}
}
