package helper

import (
	"strings"
	"testing"
)

func TestGenerateBatchCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateBatchCode()
		if len(code) != 4 {
			t.Fatalf("batch code %q has length %d, want 4", code, len(code))
		}
		if code != strings.ToUpper(code) {
			t.Errorf("batch code %q is not uppercase", code)
		}
		for _, r := range code {
			if !strings.ContainsRune("0123456789ABCDEF", r) {
				t.Errorf("batch code %q contains non-hex char %q", code, r)
			}
		}
		seen[code] = true
	}
	// 2 byte acak: dari 50 percobaan hampir pasti lebih dari satu nilai
	if len(seen) < 2 {
		t.Errorf("expected varied codes, got %v", seen)
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	pw := GenerateRandomPassword(8)
	if len(pw) != 8 {
		t.Fatalf("password length = %d, want 8", len(pw))
	}
	for _, r := range pw {
		if !strings.ContainsRune(passwordCharset, r) {
			t.Errorf("password contains char %q outside charset", r)
		}
	}

	if got := GenerateRandomPassword(0); len(got) != 8 {
		t.Errorf("zero length should fall back to 8, got %d", len(got))
	}
}

func TestGenerateTokenHashMatches(t *testing.T) {
	plain, hashed := GenerateToken()
	if len(plain) != 64 {
		t.Fatalf("plain token length = %d, want 64 hex chars", len(plain))
	}
	if HashToken(plain) != hashed {
		t.Error("stored hash does not match HashToken(plain)")
	}
	if plain == hashed {
		t.Error("plain token should differ from its hash")
	}
}
