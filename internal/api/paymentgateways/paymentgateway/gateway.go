package paymentgateway

import "context"

type Gateway interface {
	Name() string

	// VerifyWebhookSignature checks the gateway's webhook signature over
	// the raw request body.
	VerifyWebhookSignature(body []byte, signature string) error

	CreateSubscription(ctx context.Context, payload SubscriptionCreatePayload) (*Subscription, error)
	CancelSubscription(ctx context.Context, subID string, atCycleEnd bool) error
}
