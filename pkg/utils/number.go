package utils

import "strconv"

// ParsePositiveInt converte parâmetros de query como page e per_page.
// Texto vazio retorna fallback; valores não numéricos ou menores que 1 retornam erro.
func ParsePositiveInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	if n < 1 {
		return 0, strconv.ErrRange
	}

	return n, nil
}
