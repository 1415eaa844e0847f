package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Medellín":           "medellin",
		"MEDELLÍN":           "medellin",
		"Cúcuta":             "cucuta",
		"San José de Cúcuta": "san jose de cucuta",
		"  Suba  ":           "suba",
		"20Julio":            "20julio",
		"":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Fold(in), "input %q", in)
	}
}

func TestFold_Idempotent(t *testing.T) {
	for _, s := range []string{"Medellín", "Cali Norte", "Ciudad Bolivar"} {
		once := Fold(s)
		assert.Equal(t, once, Fold(once))
	}
}
