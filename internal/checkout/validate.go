package checkout

import (
	"errors"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var fieldNames = map[string]string{
	"Governorate": "governorate",
	"Area":        "area",
	"Block":       "block",
	"Street":      "street",
	"Building":    "building",
	"Name":        "name",
	"Email":       "email",
	"Phone":       "phone",
}

// ValidateAddress reports every missing required field. Only presence is
// checked; content is not normalized or format-checked.
func ValidateAddress(addr entities.Address) error {
	if err := validate.Struct(addr); err != nil {
		return toValidationError("Please complete all required address fields", err)
	}
	return nil
}

func IsAddressComplete(addr entities.Address) bool {
	return ValidateAddress(addr) == nil
}

func ValidateCustomer(info entities.CustomerInfo) error {
	if err := validate.Struct(info); err != nil {
		return toValidationError("Please complete your contact information", err)
	}
	return nil
}

func toValidationError(message string, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		name, ok := fieldNames[fe.Field()]
		if !ok {
			name = fe.Field()
		}
		fields = append(fields, name)
	}
	return entities.NewValidationError(message, fields...)
}
