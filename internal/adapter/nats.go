package adapter

import (
	"context"

	"github.com/nats-io/nats.go"
)

// NatsConn defines an interface for NATS core connection operations to enable mocking
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsConn=MockNatsConn,NatsConnector=MockNatsConnector
type NatsConn interface {
	Publish(subject string, data []byte) error
	RequestWithContext(ctx context.Context, subject string, data []byte) (*nats.Msg, error)
	Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error)
	Flush() error
	Drain() error
	Close()
	IsConnected() bool
	ConnectedUrl() string
}

// NatsConnector defines an interface for creating NATS connections
type NatsConnector interface {
	Connect(url string, options ...nats.Option) (NatsConn, error)
}

// RealNatsConnector implements NatsConnector using the standard nats package
type RealNatsConnector struct{}

// NewNatsConnector creates a new real NATS connector
func NewNatsConnector() NatsConnector {
	return &RealNatsConnector{}
}

func (n *RealNatsConnector) Connect(url string, options ...nats.Option) (NatsConn, error) {
	nc, err := nats.Connect(url, options...)
	if err != nil {
		return nil, err
	}
	return nc, nil
}
