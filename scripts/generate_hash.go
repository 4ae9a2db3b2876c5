// +build ignore

// generate_hash.go готовит значение ADMIN_PASSWORD_HASH для API доски.
// Запуск: go run scripts/generate_hash.go <пароль админки>
//
// Выводится хеш Argon2id в формате, который понимает проверка
// в internal/features/admin (verifyArgon2id): параметры зашиты в сам
// хеш, так что их можно менять здесь, не трогая сервер.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id. Проверяющая сторона читает их из хеша,
// поэтому единственное место, где они задаются — здесь.
var params = struct {
	memory      uint32 // КиБ
	iterations  uint32
	parallelism uint8
	saltLen     int
	keyLen      uint32
}{
	memory:      64 * 1024,
	iterations:  3,
	parallelism: 2,
	saltLen:     16,
	keyLen:      32,
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Использование: go run scripts/generate_hash.go <пароль админки>")
		os.Exit(1)
	}

	encoded, err := hashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Добавьте в окружение сервера (.env / docker-compose):")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", encoded)
}

// hashPassword считает Argon2id-хеш со свежей солью и кодирует его
// в строку вида $argon2id$v=19$m=...,t=...,p=...$<соль>$<хеш>.
func hashPassword(password string) (string, error) {
	salt := make([]byte, params.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("генерация соли: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt,
		params.iterations, params.memory, params.parallelism, params.keyLen)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		params.memory, params.iterations, params.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}
