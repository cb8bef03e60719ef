package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/paymentgateway"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

func newTestGateway(t *testing.T) *Gateway {
	os.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	os.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	os.Setenv("RAZORPAY_WEBHOOK_SECRET", testWebhookSecret)
	t.Cleanup(func() {
		os.Unsetenv("RAZORPAY_KEY_ID")
		os.Unsetenv("RAZORPAY_KEY_SECRET")
		os.Unsetenv("RAZORPAY_WEBHOOK_SECRET")
	})

	log := logutil.NewStderrLog("test")
	g, err := NewGateway(log, config.NewEnvConfig(log))
	require.NoError(t, err)
	return g
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body) //nolint:errcheck
	return hex.EncodeToString(mac.Sum(nil))
}

func TestNewGatewayRequiresConfig(t *testing.T) {
	log := logutil.NewStderrLog("test")

	_, err := NewGateway(log, config.NewEnvConfig(log))
	assert.Error(t, err)
}

func TestVerifyWebhookSignature(t *testing.T) {
	g := newTestGateway(t)
	body := []byte(`{"event": "subscription.activated"}`)

	assert.NoError(t, g.VerifyWebhookSignature(body, signBody(body)))
	assert.Error(t, g.VerifyWebhookSignature(body, ""))
	assert.Error(t, g.VerifyWebhookSignature(body, "deadbeef"))
	assert.Error(t, g.VerifyWebhookSignature([]byte(`tampered`), signBody(body)))
}

func TestCreateSubscription(t *testing.T) {
	g := newTestGateway(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/subscriptions", r.URL.Path)

		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "plan_ext_1", reqBody["plan_id"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "sub_ext_1", "status": "created", "short_url": "https://rzp.io/i/abc"}`)) //nolint:errcheck
	}))
	defer srv.Close()
	require.NoError(t, g.SetBaseURL(srv.URL))

	sub, err := g.CreateSubscription(context.Background(), paymentgateway.SubscriptionCreatePayload{
		GatewayPlanID: "plan_ext_1",
		TotalCount:    12,
	})
	require.NoError(t, err)
	assert.Equal(t, "sub_ext_1", sub.ID)
	assert.Equal(t, paymentgateway.SubscriptionStatusCreated, sub.Status)
	assert.Equal(t, "https://rzp.io/i/abc", sub.ShortURL)
}

func TestCreateSubscriptionGatewayError(t *testing.T) {
	g := newTestGateway(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": "BAD_REQUEST_ERROR", "description": "plan not found"}}`)) //nolint:errcheck
	}))
	defer srv.Close()
	require.NoError(t, g.SetBaseURL(srv.URL))

	_, err := g.CreateSubscription(context.Background(), paymentgateway.SubscriptionCreatePayload{
		GatewayPlanID: "plan_missing",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan not found")
}

func TestCancelSubscription(t *testing.T) {
	g := newTestGateway(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/subscriptions/sub_ext_1/cancel", r.URL.Path)

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, float64(1), reqBody["cancel_at_cycle_end"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "sub_ext_1", "status": "cancelled"}`)) //nolint:errcheck
	}))
	defer srv.Close()
	require.NoError(t, g.SetBaseURL(srv.URL))

	assert.NoError(t, g.CancelSubscription(context.Background(), "sub_ext_1", true))
}
