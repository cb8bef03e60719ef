package paymentgateway

type EventProcessor interface {
	Process(payload string, gatewayEventID string, eventUUID string) error
}
