package types

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StringToBool holds a flag read from the environment, e.g. DEBUG=TRUE.
type StringToBool string

func (s StringToBool) parse() (bool, error) {
	return strconv.ParseBool(strings.ToLower(strings.TrimSpace(string(s))))
}

func (s StringToBool) ToBool() bool {
	value, _ := s.parse()
	return value
}

func ValidateStringToBool(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(StringToBool)
	if !ok {
		return false
	}
	_, err := value.parse()
	return err == nil
}
