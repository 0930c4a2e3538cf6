package pararg

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  TokenKind
	}{
		{"-D", TokenShort},
		{"-7", TokenShort},
		{"-Dx", TokenMalformed},
		{"-", TokenMalformed},
		{"-@", TokenMalformed},
		{"--document", TokenLong},
		{"--d", TokenLong},
		{"--9lives", TokenLong},
		{"--document=a.txt", TokenLong},
		{"--", TokenMalformed},
		{"---x", TokenMalformed},
		{"--=x", TokenMalformed},
		{"file.txt", TokenPositional},
		{"42", TokenPositional},
		{"./file", TokenPositional},
		{"~/file", TokenPositional},
		{"/abs/file", TokenPositional},
		{".", TokenPositional},
		{"", TokenMalformed},
		{"@file", TokenMalformed},
		{"+x", TokenMalformed},
		{"_x", TokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Classify(tt.token); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.token, got, tt.want)
			}
		})
	}
}

func TestSplitInline(t *testing.T) {
	tests := []struct {
		body   string
		offset int
		length int
		found  bool
	}{
		{"document=a.txt", 9, 5, true},
		{"document=", 9, 0, true},
		{"document", 0, 0, false},
		{"document=a=b", 9, 3, true},
		{"=x", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			offset, length, found := SplitInline(tt.body)
			if offset != tt.offset || length != tt.length || found != tt.found {
				t.Errorf("SplitInline(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.body, offset, length, found, tt.offset, tt.length, tt.found)
			}
			if found && tt.body[offset:] != tt.body[len(tt.body)-length:] {
				t.Errorf("offset and length disagree for %q", tt.body)
			}
		})
	}
}

func TestStripInline(t *testing.T) {
	tests := map[string]string{
		"read":       "read",
		"read=x":     "read",
		"read=":      "read",
		"read=a=b":   "read",
		"documents=": "documents",
	}
	for in, want := range tests {
		if got := stripInline(in); got != want {
			t.Errorf("stripInline(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	kinds := map[TokenKind]string{
		TokenShort:      "short",
		TokenLong:       "long",
		TokenPositional: "positional",
		TokenMalformed:  "malformed",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
