package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterDecimalValidators wires the dgte0/dgt0 binding tags into gin's
// validator engine. The stock numeric tags (gte, gt) do not apply to
// decimal.Decimal, so amount fields carry these instead.
func RegisterDecimalValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("dgte0", decimalGTEZero); err != nil {
		return fmt.Errorf("failed to register dgte0 validator: %w", err)
	}
	if err := v.RegisterValidation("dgt0", decimalGTZero); err != nil {
		return fmt.Errorf("failed to register dgt0 validator: %w", err)
	}
	return nil
}

func decimalGTEZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}

func decimalGTZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}
