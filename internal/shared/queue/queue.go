package queue

// Message is a queue message. LockID identifies the distributed lock
// taken while one consumer processes the message.
type Message interface {
	LockID() string
}
