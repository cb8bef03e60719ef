package plans

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

	hctx.Router.Methods(http.MethodGet).Path("/v1/plans").Handler(
		httptransport.NewServer(
			makeListEndpoint(svc),
			decodeListRequest,
			transportutil.EncodeJSONResponse,
			httptransport.ServerBefore(
				transportutil.StoreHTTPRequestToContext,
				transportutil.MakeStoreAnonymousRequestContext(ectx)),
			httptransport.ServerErrorEncoder(transportutil.EncodeError),
			httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(hctx.Log)),
		))
}

func decodeListRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return struct{}{}, nil
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		ret, err := svc.List(rc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list plans")
		}

		return ret, nil
	}
}
