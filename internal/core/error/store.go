package errx

import (
	"errors"
	"net/http"
	"os"
)

// WrapStore maps durable store I/O errors to the unified Error type.
func WrapStore(err error) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return New(err, http.StatusNotFound, StoreErrorMessage)
	}

	return New(err, http.StatusInternalServerError, StoreErrorMessage)
}
