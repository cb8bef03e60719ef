package usage

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/endpointutil"
	"github.com/sahayog/sahayog-api/internal/api/transportutil"
	"github.com/sahayog/sahayog-api/pkg/api/request"
)

func RegisterHandlers(svc Service, hctx *transportutil.HandlerRegContext) {
	ectx := hctx.EndpointRegContext()

	hctx.Router.Methods(http.MethodGet).Path("/v1/usage").Handler(
		httptransport.NewServer(
			makeGetEndpoint(svc),
			decodeEmptyRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreAuthorizedRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))

	hctx.Router.Methods(http.MethodPost).Path("/v1/internal/usage/snapshot").Handler(
		httptransport.NewServer(
			makeTriggerSnapshotEndpoint(svc),
			decodeEmptyRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreInternalRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))
}

func decodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return struct{}{}, nil
}

func makeGetEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		ret, err := svc.Get(rc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get usage")
		}

		return ret, nil
	}
}

func makeTriggerSnapshotEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.InternalContext)
		if err := svc.TriggerSnapshot(rc); err != nil {
			return nil, errors.Wrap(err, "failed to trigger usage snapshot")
		}

		return struct{}{}, nil
	}
}
