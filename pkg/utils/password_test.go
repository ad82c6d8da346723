package utils

import "testing"

func TestHashPassword_NonDeterministic(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	// 每次加盐不同，哈希必然不同
	if h1 == h2 {
		t.Error("two hashes of the same plaintext should differ")
	}

	// 但都能通过校验
	if !CheckPassword("secret1", h1) || !CheckPassword("secret1", h2) {
		t.Error("both hashes should verify against the original plaintext")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	h, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if CheckPassword("wrong", h) {
		t.Error("wrong password should not verify")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	// 存储被污染时按校验失败处理，不 panic
	cases := []string{"", "not-a-bcrypt-hash", "$2a$10$tooshort"}
	for _, c := range cases {
		if CheckPassword("secret1", c) {
			t.Errorf("malformed hash %q should not verify", c)
		}
	}
}
