package razorpay

// Webhook envelope format:
// https://razorpay.com/docs/webhooks/payloads/subscriptions/

type webhookEvent struct {
	Entity    string       `json:"entity"`
	AccountID string       `json:"account_id"`
	Event     string       `json:"event"`
	Contains  []string     `json:"contains"`
	Payload   eventPayload `json:"payload"`
	CreatedAt int64        `json:"created_at"`
}

type eventPayload struct {
	Subscription *subscriptionWrapper `json:"subscription,omitempty"`
	Payment      *paymentWrapper      `json:"payment,omitempty"`
}

type subscriptionWrapper struct {
	Entity subscriptionEntity `json:"entity"`
}

type subscriptionEntity struct {
	ID         string `json:"id"`
	PlanID     string `json:"plan_id"`
	Status     string `json:"status"`
	Quantity   int    `json:"quantity"`
	TotalCount int    `json:"total_count"`
	PaidCount  int    `json:"paid_count"`

	CurrentStart int64  `json:"current_start"`
	CurrentEnd   int64  `json:"current_end"`
	ChargeAt     int64  `json:"charge_at"`
	EndedAt      *int64 `json:"ended_at"`

	Notes map[string]string `json:"notes"`
}

type paymentWrapper struct {
	Entity paymentEntity `json:"entity"`
}

type paymentEntity struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	Status   string `json:"status"`
	OrderID  string `json:"order_id"`
	Method   string `json:"method"`

	Email   string `json:"email"`
	Contact string `json:"contact"`

	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`

	CreatedAt int64 `json:"created_at"`
}
