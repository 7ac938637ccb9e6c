package errors

import (
	"github.com/hashicorp/go-multierror"
)

/*
	HANDLECOMMON HELPERS
*/

func catchTypedErrors(err error) error {
	if err == nil {
		return nil
	}
	var typedErr CLITypedError
	if As(err, &typedErr) {
		return withCause(typedErr.UserFacingError(), err)
	}
	return err
}

// A batch summary already names how many documents failed; the individual failures were printed as they happened.
func catchMultiErrors(err error) error {
	if err == nil {
		return nil
	}
	var batchErr *BatchApplyError
	if As(err, &batchErr) {
		return New(batchErr.Error())
	}
	if merr, ok := err.(*multierror.Error); ok && len(merr.Errors) == 1 {
		return handleErrors(merr.Errors[0])
	}
	return err
}
