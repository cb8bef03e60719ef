package transportutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/apierrors"
)

type Error struct {
	HTTPCode int
	Code     string
	Message  string
}

func (e Error) MarshalJSON() ([]byte, error) {
	if e.Code == "" {
		return []byte(strconv.Quote(e.Message)), nil
	}

	return json.Marshal(struct {
		Code    string `json:"code"`
		Message string `json:"message,omitempty"`
	}{
		Code:    e.Code,
		Message: e.Message,
	})
}

func (e Error) Error() string {
	return e.Message
}

type ErrorResponse struct {
	Error *Error `json:"error,omitempty"`
}

func makeError(code int, e error) *Error {
	return &Error{
		HTTPCode: code,
		Message:  e.Error(),
	}
}

func MakeError(e error) *Error {
	srcErr := errors.Cause(e)

	if withCode, ok := srcErr.(apierrors.ErrorWithCode); ok {
		return &Error{
			HTTPCode: http.StatusNotAcceptable,
			Code:     withCode.GetCode(),
			Message:  srcErr.(apierrors.LocalizedError).GetMessage(),
		}
	}

	if _, ok := srcErr.(*apierrors.RaceConditionError); ok {
		return makeError(http.StatusConflict, srcErr)
	}

	switch srcErr {
	case apierrors.ErrNotFound:
		return makeError(http.StatusNotFound, e)
	case apierrors.ErrBadRequest:
		return makeError(http.StatusBadRequest, e)
	case apierrors.ErrNotAuthorized:
		return makeError(http.StatusForbidden, e)
	case apierrors.ErrInternal:
		return makeError(http.StatusInternalServerError, errors.New("internal error"))
	}

	return makeError(http.StatusInternalServerError, errors.New("internal error"))
}

func HandleErrorLikeResult(ctx context.Context, w http.ResponseWriter, e error) error {
	switch e.(type) {
	case *apierrors.PendingError:
		w.Header().Add("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(http.StatusAccepted)
		return nil
	}

	return fmt.Errorf("unknown error like result type: %#v", e)
}
