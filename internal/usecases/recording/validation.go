package recording

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

// Limites das colunas: INTEGER para quantidades e NUMERIC(12,2) para o custo
const maxItems = math.MaxInt32

var maxCost = decimal.New(1, 10)

// ValidateForm converte o formulário em um lançamento válido.
// Quantidades são inteiros não negativos e o custo é um decimal não negativo.
// Se total_items vier vazio, assume a soma de upper_items e lower_items.
func ValidateForm(form domain.EntryForm) (domain.NewSalesEntryInput, error) {
	var input domain.NewSalesEntryInput
	var err error

	if input.UpperItems, err = parseItems("upper_items", form.UpperItems); err != nil {
		return input, err
	}

	if input.LowerItems, err = parseItems("lower_items", form.LowerItems); err != nil {
		return input, err
	}

	if strings.TrimSpace(form.TotalItems) == "" {
		input.TotalItems = input.UpperItems + input.LowerItems
		if input.TotalItems > maxItems {
			return input, NewEntryError(ErrInvalidNumber, apiErrors.ErrInvalidFormat, "total_items")
		}
	} else if input.TotalItems, err = parseItems("total_items", form.TotalItems); err != nil {
		return input, err
	}

	if input.Cost, err = parseCost(form.Cost); err != nil {
		return input, err
	}

	return input, nil
}

func parseItems(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewEntryError(ErrMissingField, apiErrors.ErrMissingRequiredData, field)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewEntryError(ErrInvalidNumber, apiErrors.ErrInvalidFormat, field)
	}

	if n < 0 {
		return 0, NewEntryError(ErrNegativeValue, apiErrors.ErrInvalidFormat, field)
	}

	if n > maxItems {
		return 0, NewEntryError(ErrInvalidNumber, apiErrors.ErrInvalidFormat, field)
	}

	return n, nil
}

func parseCost(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, NewEntryError(ErrMissingField, apiErrors.ErrMissingRequiredData, "cost")
	}

	cost, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewEntryError(ErrInvalidNumber, apiErrors.ErrInvalidFormat, "cost")
	}

	if cost.IsNegative() {
		return decimal.Zero, NewEntryError(ErrNegativeValue, apiErrors.ErrInvalidFormat, "cost")
	}

	cost = cost.Round(2)
	if cost.GreaterThanOrEqual(maxCost) {
		return decimal.Zero, NewEntryError(ErrInvalidNumber, apiErrors.ErrInvalidFormat, "cost")
	}

	return cost, nil
}
