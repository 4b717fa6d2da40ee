package http

import (
	"github.com/arenda/backend/internal/domain/billing"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding validators used by the API.
// Call once before the first request is served.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("billingperiod", validBillingPeriod)
}

// validBillingPeriod accepts strings billing.ParsePeriod accepts (YYYY-MM)
func validBillingPeriod(fl validator.FieldLevel) bool {
	_, err := billing.ParsePeriod(fl.Field().String())
	return err == nil
}
