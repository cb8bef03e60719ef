package paymentgateways

import (
	"fmt"
	"time"

	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/implementations"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/implementations/razorpay"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/paymentgateway"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
)

type Factory interface {
	Build(gateway string) (paymentgateway.Gateway, error)
}

type basicFactory struct {
	log logutil.Log
	cfg config.Config
}

func NewBasicFactory(log logutil.Log, cfg config.Config) Factory {
	return &basicFactory{
		log: log,
		cfg: cfg,
	}
}

func (f basicFactory) buildImpl(gateway string) (paymentgateway.Gateway, error) {
	switch gateway {
	case razorpay.GatewayName:
		return razorpay.NewGateway(f.log, f.cfg)
	default:
		return nil, fmt.Errorf("invalid gateway name %q", gateway)
	}
}

func (f *basicFactory) Build(gateway string) (paymentgateway.Gateway, error) {
	g, err := f.buildImpl(gateway)
	if err != nil {
		return nil, err
	}

	return implementations.NewStableGateway(g, time.Second*30, 3), nil
}
