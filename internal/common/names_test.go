package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Mode":        "mode",
		"ModeA":       "mode_a",
		"HTTPMode":    "http_mode",
		"opcode":      "opcode",
		"uartBaud":    "uart_baud",
		"Reg32Field":  "reg32_field",
		"already_low": "already_low",
	}

	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}

func TestUpperLowerFirst(t *testing.T) {
	assert.Equal(t, "Mode", UpperFirst("mode"))
	assert.Equal(t, "mode", LowerFirst("Mode"))
	assert.Equal(t, "", UpperFirst(""))
	assert.Equal(t, "", LowerFirst(""))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "arbint", PkgAlias("bitenum-generator/arbint"))
	assert.Equal(t, "arbint", PkgAlias("example.com/arbint/v2"))
	assert.Equal(t, "", PkgAlias(""))
}
