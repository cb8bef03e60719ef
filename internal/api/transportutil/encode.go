package transportutil

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/apierrors"
)

func EncodeError(ctx context.Context, err error, w http.ResponseWriter) {
	r := getHTTPRequestFromContext(ctx)

	if apierrors.IsErrorLikeResult(errors.Cause(err)) {
		if handleErr := HandleErrorLikeResult(ctx, w, errors.Cause(err)); handleErr == nil {
			FinalizeRequest(ctx, http.StatusAccepted, r)
			return
		}
	}

	apiErr := MakeError(err)
	w.Header().Add("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(apiErr.HTTPCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: apiErr})

	FinalizeRequest(ctx, apiErr.HTTPCode, r)
}

func EncodeJSONResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	r := getHTTPRequestFromContext(ctx)

	w.Header().Add("Content-Type", "application/json; charset=UTF-8")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		err = errors.Wrap(err, "failed to encode response")
		storeContextError(ctx, err)
		return err
	}

	FinalizeRequest(ctx, http.StatusOK, r)
	return nil
}
