package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestGetInstructions(t *testing.T) {
	t.Run("ReturnsTemplateForKnownMethod", func(t *testing.T) {
		instructions := GetInstructions(MethodEasypaisa)
		assert.NotEmpty(t, instructions)

		found := false
		for _, instr := range instructions {
			if strings.Contains(instr, "{{account}}") {
				found = true
				break
			}
		}
		assert.True(t, found, "Instructions should contain {{account}} placeholder")
	})

	t.Run("EveryOptionHasInstructions", func(t *testing.T) {
		for _, opt := range Options {
			_, ok := InstructionMap[opt.Method]
			assert.True(t, ok, opt.Method)
		}
	})

	t.Run("ReturnsDefaultForUnknown", func(t *testing.T) {
		instructions := GetInstructions("UNKNOWN_METHOD")
		assert.Len(t, instructions, 1)
	})
}

func TestInjectVariables(t *testing.T) {
	t.Run("ReplacesPlaceholders", func(t *testing.T) {
		template := []string{"Pay {{amount}} from {{account}}."}
		vars := InstructionVars{
			"amount":  "Rs. 2,800",
			"account": "03001234567",
		}

		result := InjectVariables(template, vars)

		assert.Equal(t, []string{"Pay Rs. 2,800 from 03001234567."}, result)
	})

	t.Run("LeavesMissingVariables", func(t *testing.T) {
		result := InjectVariables([]string{"Pay {{amount}}"}, InstructionVars{})
		assert.Equal(t, "Pay {{amount}}", result[0])
	})
}

func TestInstructions(t *testing.T) {
	steps := Instructions(MethodCOD, 7250, "", language.English)
	assert.Contains(t, steps[1], "Rs. 7,250")

	steps = Instructions(MethodJazzCash, 500, "03001234567", language.English)
	assert.Contains(t, steps[0], "03001234567")
	for _, s := range steps {
		assert.NotContains(t, s, "{{")
	}
}

func TestMethod(t *testing.T) {
	tests := []struct {
		in      string
		valid   bool
		account bool
	}{
		{"COD", true, false},
		{"CARD", true, false},
		{"EASYPAISA", true, true},
		{"JAZZCASH", true, true},
		{"BITCOIN", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMethod(tt.in)
			if !tt.valid {
				assert.ErrorIs(t, err, ErrUnknownMethod)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.account, m.RequiresAccount())
		})
	}
}
