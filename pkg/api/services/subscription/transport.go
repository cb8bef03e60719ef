package subscription

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

	hctx.Router.Methods(http.MethodGet).Path("/v1/subscription").Handler(
		httptransport.NewServer(
			makeGetEndpoint(svc),
			decodeGetRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreAuthorizedRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))

	hctx.Router.Methods(http.MethodPost).Path("/v1/subscription").Handler(
		httptransport.NewServer(
			makeCreateEndpoint(svc),
			decodeCreateRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreAuthorizedRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))

	hctx.Router.Methods(http.MethodDelete).Path("/v1/subscription").Handler(
		httptransport.NewServer(
			makeCancelEndpoint(svc),
			decodeGetRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreAuthorizedRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))
}

func decodeGetRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return struct{}{}, nil
}

type createRequest struct {
	Payload *CreatePayload
}

func decodeCreateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req createRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(err, "failed to decode request")
	}

	return &req, nil
}

func makeGetEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		ret, err := svc.Get(rc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get subscription")
		}

		return ret, nil
	}
}

func makeCreateEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		reqTyped := req.(*createRequest)

		ret, err := svc.Create(rc, reqTyped.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create subscription")
		}

		return ret, nil
	}
}

func makeCancelEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		if err := svc.Cancel(rc); err != nil {
			return nil, errors.Wrap(err, "failed to cancel subscription")
		}

		return struct{}{}, nil
	}
}
