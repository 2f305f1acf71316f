package recording

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField  = errors.New("campo obrigatório ausente")
	ErrInvalidNumber = errors.New("valor numérico inválido")
	ErrNegativeValue = errors.New("valor não pode ser negativo")
	ErrInvalidPage   = errors.New("paginação inválida")
	ErrInvalidRange  = errors.New("intervalo de datas inválido")
)

// EntryError é um erro de validação de lançamento com o campo e o código da API
type EntryError struct {
	Err   error
	Code  string
	Field string
}

func (e *EntryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
	}
	return e.Err.Error()
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func NewEntryError(baseErr error, code string, field string) *EntryError {
	return &EntryError{
		Err:   baseErr,
		Code:  code,
		Field: field,
	}
}
