package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/inkwell/internal/common"
	"github.com/dmitrijs2005/inkwell/internal/logging"
)

var publicErrors = []error{
	common.ErrorValidation,
	common.ErrorConflict,
	common.ErrorNotFound,
	common.ErrorUnauthorized,
}

// translateError passes the known error kinds through unchanged and
// replaces anything else with common.ErrorInternal after logging it.
func translateError(ctx context.Context, l logging.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	l.Error(ctx, "unexpected failure", "op", op, "error", err)
	return common.ErrorInternal
}
