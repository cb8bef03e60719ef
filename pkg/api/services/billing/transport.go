package billing

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

	hctx.Router.Methods(http.MethodPost).Path("/v1/billing/{gateway}/events").Handler(
		httptransport.NewServer(
			makeEventCreateEndpoint(svc),
			decodeEventCreateRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreAnonymousRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))

	hctx.Router.Methods(http.MethodGet).Path("/v1/billing/payments").Handler(
		httptransport.NewServer(
			makeListPaymentsEndpoint(svc),
			decodeEmptyRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreAuthorizedRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))

	hctx.Router.Methods(http.MethodGet).Path("/v1/billing/invoices").Handler(
		httptransport.NewServer(
			makeListInvoicesEndpoint(svc),
			decodeEmptyRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreAuthorizedRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))
}

type eventCreateRequest struct {
	Context *EventRequestContext
	Body    request.Body
}

func decodeEventCreateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req eventCreateRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(err, "failed to decode request")
	}

	return &req, nil
}

func decodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return struct{}{}, nil
}

func makeEventCreateEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		reqTyped := req.(*eventCreateRequest)
		reqTyped.Context.FillLogContext(rc.Lctx)

		if err := svc.EventCreate(rc, reqTyped.Context, reqTyped.Body); err != nil {
			return nil, errors.Wrap(err, "failed to create billing event")
		}

		return struct{}{}, nil
	}
}

func makeListPaymentsEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		ret, err := svc.ListPayments(rc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list payments")
		}

		return ret, nil
	}
}

func makeListInvoicesEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		ret, err := svc.ListInvoices(rc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list invoices")
		}

		return ret, nil
	}
}
