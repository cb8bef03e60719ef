package app

import (
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways"
)

type Modifier func(a *App)

func SetGatewayFactory(gf paymentgateways.Factory) Modifier {
	return func(a *App) {
		a.gatewayFactory = gf
	}
}
