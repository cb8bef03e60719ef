package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"

	"github.com/levigross/grequests"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/paymentgateway"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
)

const GatewayName = "razorpay"

type Gateway struct {
	log logutil.Log

	keyID     string
	keySecret string

	webhookSecret string

	apiRoot string
}

func NewGateway(log logutil.Log, cfg config.Config) (*Gateway, error) {
	keyID := cfg.GetString("RAZORPAY_KEY_ID")
	if keyID == "" {
		return nil, errors.New("no razorpay key id")
	}

	keySecret := cfg.GetString("RAZORPAY_KEY_SECRET")
	if keySecret == "" {
		return nil, errors.New("no razorpay key secret")
	}

	webhookSecret := cfg.GetString("RAZORPAY_WEBHOOK_SECRET")
	if webhookSecret == "" {
		return nil, errors.New("no razorpay webhook secret")
	}

	return &Gateway{
		log:           log,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		apiRoot:       "https://api.razorpay.com",
	}, nil
}

func (g Gateway) Name() string {
	return GatewayName
}

func (g *Gateway) SetBaseURL(u string) error {
	_, err := url.Parse(u)
	if err != nil {
		return errors.Wrap(err, "failed to parse url")
	}

	g.apiRoot = u
	return nil
}

func (g Gateway) VerifyWebhookSignature(body []byte, signature string) error {
	if signature == "" {
		return errors.New("no signature")
	}

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(body) //nolint:errcheck
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errors.New("signature mismatch")
	}

	return nil
}

func (g Gateway) CreateSubscription(ctx context.Context,
	payload paymentgateway.SubscriptionCreatePayload) (*paymentgateway.Subscription, error) {

	apiURL := fmt.Sprintf("%s/v1/subscriptions", g.apiRoot)

	reqBody := map[string]interface{}{
		"plan_id":         payload.GatewayPlanID,
		"total_count":     payload.TotalCount,
		"customer_notify": 1,
	}
	if len(payload.Notes) != 0 {
		reqBody["notes"] = payload.Notes
	}

	resp, err := grequests.Post(apiURL, &grequests.RequestOptions{
		Context: ctx,
		JSON:    reqBody,
		Auth:    []string{g.keyID, g.keySecret},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to make subscription create request")
	}

	var respData struct {
		ID       string `json:"id"`
		Status   string `json:"status"`
		ShortURL string `json:"short_url"`
		Error    struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	}
	if err = resp.JSON(&respData); err != nil {
		return nil, errors.Wrap(err, "failed to decode response json")
	}

	if !resp.Ok {
		return nil, fmt.Errorf("gateway response code %d: %s", resp.StatusCode, respData.Error.Description)
	}

	g.log.Infof("Created razorpay subscription %s in status %s", respData.ID, respData.Status)

	return &paymentgateway.Subscription{
		ID:       respData.ID,
		Status:   paymentgateway.SubscriptionStatus(respData.Status),
		ShortURL: respData.ShortURL,
	}, nil
}

func (g Gateway) CancelSubscription(ctx context.Context, subID string, atCycleEnd bool) error {
	apiURL := fmt.Sprintf("%s/v1/subscriptions/%s/cancel", g.apiRoot, subID)

	cancelAtCycleEnd := 0
	if atCycleEnd {
		cancelAtCycleEnd = 1
	}

	resp, err := grequests.Post(apiURL, &grequests.RequestOptions{
		Context: ctx,
		JSON: map[string]interface{}{
			"cancel_at_cycle_end": cancelAtCycleEnd,
		},
		Auth: []string{g.keyID, g.keySecret},
	})
	if err != nil {
		return errors.Wrap(err, "failed to make subscription cancel request")
	}

	if !resp.Ok {
		return fmt.Errorf("gateway response code %d: %s", resp.StatusCode, resp.String())
	}

	g.log.Infof("Cancelled razorpay subscription %s, at cycle end: %v", subID, atCycleEnd)
	return nil
}
