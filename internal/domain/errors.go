package domain

import "errors"

// ErrNoSession indica que não há usuário autenticado: a busca não deve ser feita
var ErrNoSession = errors.New("sessão ausente")
