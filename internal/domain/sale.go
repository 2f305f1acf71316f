package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesEntry representa um lançamento de vendas do usuário. Não existe caminho de alteração.
type SalesEntry struct {
	ID         uuid.UUID       `json:"id"`
	OwnerID    int             `json:"owner_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpperItems int             `json:"upper_items"`
	LowerItems int             `json:"lower_items"`
	TotalItems int             `json:"total_items"`
	Cost       decimal.Decimal `json:"cost"`
}

// NewSalesEntryInput contém os valores já validados de um novo lançamento
type NewSalesEntryInput struct {
	UpperItems int
	LowerItems int
	TotalItems int
	Cost       decimal.Decimal
}

// EntryPage é uma página da listagem de lançamentos, do mais recente para o mais antigo
type EntryPage struct {
	Entries    []*SalesEntry `json:"entries"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalCount int           `json:"total_count"`
	TotalPages int           `json:"total_pages"`
}

// CoerceDecimal converte o texto armazenado em decimal. Valores inválidos viram zero.
func CoerceDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CoerceInt converte o texto armazenado em inteiro. Valores inválidos viram zero.
func CoerceInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	// Aceita valores como "3.0", truncando a parte decimal
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return int(d.IntPart()), true
}

// EntryForm são os valores do formulário de lançamento como recebidos, ainda sem validação
type EntryForm struct {
	UpperItems string
	LowerItems string
	TotalItems string
	Cost       string
}
