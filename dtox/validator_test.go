package dtox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleHelpers(t *testing.T) {
	var nilPtr *int
	one := 1

	tests := []struct {
		name    string
		rule    func(any) error
		value   any
		wantErr bool
	}{
		{"required empty string", Required, "", true},
		{"required string", Required, "x", false},
		{"required nil", Required, nil, true},
		{"required nil pointer", Required, nilPtr, true},
		{"required pointer", Required, &one, false},
		{"required zero int", Required, 0, true},
		{"required false", Required, false, false},
		{"required empty slice", Required, []int{}, true},
		{"min length runes", MinLength(3), "héé", false},
		{"min length short", MinLength(3), "hé", true},
		{"min length not string", MinLength(1), 5, true},
		{"max length", MaxLength(2), "abc", true},
		{"max length ok", MaxLength(3), "abc", false},
		{"min value", MinValue(10), 9, true},
		{"min value uint", MinValue(10), uint8(10), false},
		{"max value float", MaxValue(1.5), 1.6, true},
		{"max value not numeric", MaxValue(1), "1", true},
		{"pattern match", Pattern(`^[A-Z]{3}$`), "EUR", false},
		{"pattern mismatch", Pattern(`^[A-Z]{3}$`), "eur", true},
		{"pattern not string", Pattern(`.`), 1, true},
		{"pattern partial match", Pattern(`[a-z]+`), "abc123!!", true},
		{"pattern alternation", Pattern(`eur|usd`), "usd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPatternPanicsOnInvalidExpression(t *testing.T) {
	assert.Panics(t, func() { Pattern(`(`) })
}

func TestValidationErrors(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
	assert.Nil(t, ValidationErrors{}.ToErrx())

	one := ValidationErrors{{Field: "Name", Message: "is required"}}
	assert.Equal(t, "validation error for field Name: is required", one.Error())

	two := append(one, ValidationError{Field: "Age", Message: "too low"})
	assert.Equal(t, "2 validation errors occurred", two.Error())

	xerr := two.ToErrx()
	assert.Equal(t, ErrValidationFailed, xerr.Code)
	assert.Equal(t, map[string][]string{"Name": {"is required"}, "Age": {"too low"}}, xerr.Details["fields"])
}
