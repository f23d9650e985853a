package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_id", validateSeatID)

	return validator
}

// validateSeatID accepts any string that parses as a seat identifier, such
// as "A1" or "c12". Bounds against a concrete screen are the booking
// engine's job, not the request validator's.
func validateSeatID(fl validator.FieldLevel) bool {
	_, _, err := domain.ParseSeat(fl.Field().String())
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "seat_id":
		return "must be a seat identifier like A1"
	default:
		return "is invalid"
	}
}
