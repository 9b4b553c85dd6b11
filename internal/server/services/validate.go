package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/inkwell/internal/common"
)

type field struct {
	name  string
	value string
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// required fails with common.ErrorValidation naming every blank field.
func required(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if blank(f.value) {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s required", common.ErrorValidation, strings.Join(missing, ", "))
}

// requiredIfPresent is required for optional fields: nil means "not
// supplied" and passes, a supplied blank value fails.
func requiredIfPresent(name string, value *string) error {
	if value == nil {
		return nil
	}
	return required(field{name, *value})
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
