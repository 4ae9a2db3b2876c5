package admin

import (
	"encoding/base64"
	"fmt"
	"testing"

	"golang.org/x/crypto/argon2"
)

// encodeHash собирает хеш в том же формате, что scripts/generate_hash.go.
func encodeHash(password string, salt []byte) string {
	var (
		memory      uint32 = 65536
		iterations  uint32 = 3
		parallelism uint8  = 2
	)
	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, 32)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, iterations, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))
}

func TestVerifyArgon2id(t *testing.T) {
	salt := []byte("0123456789abcdef")
	encoded := encodeHash("секретный-пароль", salt)

	if !verifyArgon2id("секретный-пароль", encoded) {
		t.Error("верный пароль должен проходить проверку")
	}
	if verifyArgon2id("неверный", encoded) {
		t.Error("неверный пароль не должен проходить проверку")
	}
}

func TestVerifyArgon2idMalformedHash(t *testing.T) {
	cases := []struct {
		name string
		hash string
	}{
		{"пустой", ""},
		{"мало частей", "$argon2id$v=19$m=65536"},
		{"битые параметры", "$argon2id$v=19$oops$c2FsdA$aGFzaA"},
		{"битая соль", "$argon2id$v=19$m=65536,t=3,p=2$%%%$aGFzaA"},
		{"битый хеш", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$%%%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if verifyArgon2id("пароль", tc.hash) {
				t.Error("битый хеш не должен проходить проверку")
			}
		})
	}
}
