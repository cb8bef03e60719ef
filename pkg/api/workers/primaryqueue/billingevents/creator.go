package billingevents

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/implementations/razorpay"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/paymentgateway"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/db/gormdb"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/internal/shared/queue/consumers"
	"github.com/sahayog/sahayog-api/internal/shared/queue/producers"
	"github.com/sahayog/sahayog-api/pkg/api/workers/primaryqueue"
	redsync "gopkg.in/redsync.v1"
)

const createQueueID = "billing/events/create"

type createMessage struct {
	Gateway        string
	GatewayEventID string
	Payload        string
	UUID           string
}

func (m createMessage) LockID() string {
	return fmt.Sprintf("%s/%s/%s", createQueueID, m.Gateway, m.UUID)
}

type CreatorProducer struct {
	producers.Base
}

func (cp *CreatorProducer) Register(m *producers.Multiplexer) error {
	return cp.Base.Register(m, createQueueID)
}

func (cp CreatorProducer) Put(gateway, gatewayEventID, payload string) error {
	return cp.Base.Put(createMessage{
		Gateway:        gateway,
		GatewayEventID: gatewayEventID,
		Payload:        payload,
		UUID:           uuid.NewV4().String(),
	})
}

type CreatorConsumer struct {
	log logutil.Log
	db  *sql.DB
	cfg config.Config
}

func NewCreatorConsumer(log logutil.Log, db *sql.DB, cfg config.Config) *CreatorConsumer {
	return &CreatorConsumer{
		log: log,
		db:  db,
		cfg: cfg,
	}
}

func (cc CreatorConsumer) Register(m *consumers.Multiplexer, df *redsync.Redsync) error {
	return primaryqueue.RegisterConsumer(cc.consumeMessage, createQueueID, m, df)
}

func (cc CreatorConsumer) consumeMessage(ctx context.Context, m *createMessage) error {
	gormDB, err := gormdb.FromSQL(ctx, cc.db)
	if err != nil {
		return errors.Wrap(err, "failed to get gorm db")
	}

	if err = cc.run(ctx, m, gormDB); err != nil {
		return errors.Wrapf(err, "create of event for %s failed", m.Gateway)
	}

	return nil
}

func (cc CreatorConsumer) run(_ context.Context, m *createMessage, db *gorm.DB) (retErr error) {
	tx, finish, err := gormdb.StartTx(db)
	if err != nil {
		return errors.Wrap(err, "failed to start tx")
	}
	defer finish(&retErr)

	var ep paymentgateway.EventProcessor
	switch m.Gateway {
	case razorpay.GatewayName:
		ep = &razorpay.EventProcessor{
			Tx:  tx,
			Log: cc.log,
		}
	default:
		return errors.Wrapf(consumers.ErrBadMessage, "unknown gateway %q", m.Gateway)
	}

	if err := ep.Process(m.Payload, m.GatewayEventID, m.UUID); err != nil {
		return errors.Wrapf(err, "failed to process by %s event processor", m.Gateway)
	}

	return nil
}
