package request

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"

	"construction_console/internal/domain/entities"
)

const (
	TagPhone   = "phone"
	TagGSTRate = "gst_rate"
)

// DefaultPhoneRegion is used when a number carries no country prefix.
const DefaultPhoneRegion = "IN"

// RegisterValidators installs the console's custom binding tags on v.
// Phone numbers without a "+" prefix are parsed as numbers of region.
func RegisterValidators(v *validator.Validate, region string) error {
	if strings.TrimSpace(region) == "" {
		region = DefaultPhoneRegion
	}
	if err := v.RegisterValidation(TagPhone, phoneValidator(region)); err != nil {
		return err
	}
	return v.RegisterValidation(TagGSTRate, func(fl validator.FieldLevel) bool {
		return entities.IsValidGSTRate(fl.Field().Float())
	})
}

func phoneValidator(region string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String(), region)
	}
}

// IsValidPhone reports whether number is a dialable number in region.
func IsValidPhone(number, region string) bool {
	number = strings.TrimSpace(number)
	if number == "" {
		return false
	}
	p, err := libphonenumber.Parse(number, strings.ToUpper(region))
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(p)
}
