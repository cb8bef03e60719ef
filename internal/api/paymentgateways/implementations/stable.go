package implementations

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/paymentgateway"
)

// Check the struct is implementing the Gateway interface.
var _ paymentgateway.Gateway = &StableGateway{}

type StableGateway struct {
	underlying   paymentgateway.Gateway
	totalTimeout time.Duration
	maxRetries   int
}

func NewStableGateway(underlying paymentgateway.Gateway, totalTimeout time.Duration, maxRetries int) *StableGateway {
	return &StableGateway{
		underlying:   underlying,
		totalTimeout: totalTimeout,
		maxRetries:   maxRetries,
	}
}

func (g StableGateway) Name() string {
	return g.underlying.Name()
}

func (g StableGateway) VerifyWebhookSignature(body []byte, signature string) error {
	// Pure computation, nothing to retry.
	return g.underlying.VerifyWebhookSignature(body, signature)
}

func (g StableGateway) retryErr(f func() error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = g.totalTimeout

	bmr := backoff.WithMaxRetries(b, uint64(g.maxRetries))
	if err := backoff.Retry(f, bmr); err != nil {
		return err
	}

	return nil
}

func (g StableGateway) CreateSubscription(ctx context.Context,
	payload paymentgateway.SubscriptionCreatePayload) (*paymentgateway.Subscription, error) {

	var ret *paymentgateway.Subscription
	err := g.retryErr(func() error {
		var err error
		ret, err = g.underlying.CreateSubscription(ctx, payload)
		return err
	})
	return ret, err
}

func (g StableGateway) CancelSubscription(ctx context.Context, subID string, atCycleEnd bool) error {
	return g.retryErr(func() error {
		return g.underlying.CancelSubscription(ctx, subID, atCycleEnd)
	})
}
