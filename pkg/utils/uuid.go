package utils

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters     = "abcdefghijklmnopqrstuvwxyz0123456789"
	usernameLength = 8
)

// GenerateUsername gera o nome de usuário público a partir do prefixo do email
func GenerateUsername(email string) (string, error) {
	suffix, err := gonanoid.Generate(characters, usernameLength)
	if err != nil {
		return "", err
	}

	prefix := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	prefix = strings.Map(func(r rune) rune {
		if strings.ContainsRune(characters, r) {
			return r
		}
		return -1
	}, prefix)

	if len(prefix) > 16 {
		prefix = prefix[:16]
	}

	if prefix == "" {
		return "user_" + suffix, nil
	}

	return prefix + "_" + suffix, nil
}
