package production_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/qlkp/reciclaje-api/internal/domain/production"
)

func TestPowderOutput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lote típico", "2000", "1900"},
		{"una tonelada", "1000", "950"},
		{"fracción con redondeo a 3 decimales", "333.333", "316.666"}, // 316.66635 -> 316.666
		{"cero", "0", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, _ := decimal.NewFromString(tc.input)
			want, _ := decimal.NewFromString(tc.want)
			got := production.PowderOutput(in)
			assert.True(t, got.Equal(want), "PowderOutput(%s) = %s, quería %s", in, got, want)
		})
	}
}

func TestYieldRate_Es95PorCiento(t *testing.T) {
	assert.True(t, production.YieldRate.Equal(decimal.NewFromFloat(0.95)))
}
