package paymentgateway

type SubscriptionStatus string

const (
	SubscriptionStatusCreated   SubscriptionStatus = "created"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusHalted    SubscriptionStatus = "halted"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusCompleted SubscriptionStatus = "completed"
)

type Subscription struct {
	ID     string
	Status SubscriptionStatus

	ShortURL string
}

type SubscriptionCreatePayload struct {
	GatewayPlanID string
	TotalCount    int
	Notes         map[string]string
}
