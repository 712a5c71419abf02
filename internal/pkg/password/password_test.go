package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Str0ng!Pass")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("expected argon2id PHC string, got %q", hash)
	}
	if !Verify("Str0ng!Pass", hash) {
		t.Fatal("correct password did not verify")
	}
	if Verify("Str0ng!Pass2", hash) {
		t.Fatal("wrong password verified")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("Str0ng!Pass")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := Hash("Str0ng!Pass")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password were identical, salt missing")
	}
	if !Verify("Str0ng!Pass", h1) || !Verify("Str0ng!Pass", h2) {
		t.Fatal("salted hashes did not verify")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=1,p=4$onlysalt",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
	}
	for _, c := range cases {
		if Verify("anything", c) {
			t.Fatalf("malformed hash %q verified", c)
		}
	}
}

func TestVerifyTamperedKey(t *testing.T) {
	hash, err := Hash("Str0ng!Pass")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	// Flip the last character of the encoded key.
	last := hash[len(hash)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := hash[:len(hash)-1] + string(replacement)
	if Verify("Str0ng!Pass", tampered) {
		t.Fatal("tampered hash verified")
	}
}
