package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs the struct-tag checks on the loaded configuration
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var problems []string
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s: %s", e.Namespace(), formatTag(e)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func formatTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of " + e.Param()
	default:
		return "invalid value"
	}
}
