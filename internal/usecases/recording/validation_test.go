package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

func TestValidateForm(t *testing.T) {
	input, err := ValidateForm(domain.EntryForm{
		UpperItems: " 4 ",
		LowerItems: "6",
		TotalItems: "12",
		Cost:       "150.456",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, input.UpperItems)
	assert.Equal(t, 6, input.LowerItems)
	assert.Equal(t, 12, input.TotalItems)
	assert.Equal(t, "150.46", input.Cost.String())
}

func TestValidateForm_TotalDefaultsToSum(t *testing.T) {
	input, err := ValidateForm(domain.EntryForm{
		UpperItems: "4",
		LowerItems: "6",
		Cost:       "0",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, input.TotalItems)
	assert.True(t, input.Cost.IsZero())
}

func TestValidateForm_ColumnLimits(t *testing.T) {
	input, err := ValidateForm(domain.EntryForm{
		UpperItems: "2147483647",
		LowerItems: "0",
		Cost:       "9999999999.99",
	})
	require.NoError(t, err)

	assert.Equal(t, 2147483647, input.TotalItems)
	assert.Equal(t, "9999999999.99", input.Cost.String())
}

func TestValidateForm_Errors(t *testing.T) {
	valid := domain.EntryForm{UpperItems: "1", LowerItems: "1", TotalItems: "2", Cost: "10"}

	tests := []struct {
		name          string
		mutate        func(f *domain.EntryForm)
		expectedField string
		expectedCode  string
		expectedErr   error
	}{
		{
			name:          "Upper ausente",
			mutate:        func(f *domain.EntryForm) { f.UpperItems = "" },
			expectedField: "upper_items",
			expectedCode:  apiErrors.ErrMissingRequiredData,
			expectedErr:   ErrMissingField,
		},
		{
			name:          "Lower não numérico",
			mutate:        func(f *domain.EntryForm) { f.LowerItems = "dois" },
			expectedField: "lower_items",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrInvalidNumber,
		},
		{
			name:          "Quantidade fracionada",
			mutate:        func(f *domain.EntryForm) { f.TotalItems = "2.5" },
			expectedField: "total_items",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrInvalidNumber,
		},
		{
			name:          "Quantidade negativa",
			mutate:        func(f *domain.EntryForm) { f.UpperItems = "-1" },
			expectedField: "upper_items",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrNegativeValue,
		},
		{
			name:          "Custo ausente",
			mutate:        func(f *domain.EntryForm) { f.Cost = "  " },
			expectedField: "cost",
			expectedCode:  apiErrors.ErrMissingRequiredData,
			expectedErr:   ErrMissingField,
		},
		{
			name:          "Custo não numérico",
			mutate:        func(f *domain.EntryForm) { f.Cost = "NaN" },
			expectedField: "cost",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrInvalidNumber,
		},
		{
			name:          "Quantidade acima do limite da coluna",
			mutate:        func(f *domain.EntryForm) { f.UpperItems = "2147483648" },
			expectedField: "upper_items",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrInvalidNumber,
		},
		{
			name:          "Soma padrão acima do limite da coluna",
			mutate: func(f *domain.EntryForm) {
				f.UpperItems = "2147483647"
				f.TotalItems = ""
			},
			expectedField: "total_items",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrInvalidNumber,
		},
		{
			name:          "Custo com onze dígitos inteiros",
			mutate:        func(f *domain.EntryForm) { f.Cost = "12345678901234.5" },
			expectedField: "cost",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrInvalidNumber,
		},
		{
			name:          "Custo que arredonda para fora do limite",
			mutate:        func(f *domain.EntryForm) { f.Cost = "9999999999.999" },
			expectedField: "cost",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrInvalidNumber,
		},
		{
			name:          "Custo negativo",
			mutate:        func(f *domain.EntryForm) { f.Cost = "-0.01" },
			expectedField: "cost",
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedErr:   ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			_, err := ValidateForm(form)

			var entryErr *EntryError
			require.ErrorAs(t, err, &entryErr)
			assert.Equal(t, tt.expectedField, entryErr.Field)
			assert.Equal(t, tt.expectedCode, entryErr.Code)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
