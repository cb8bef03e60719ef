package producers

import "github.com/sahayog/sahayog-api/internal/shared/queue"

type Queue interface {
	Put(message queue.Message) error
}
