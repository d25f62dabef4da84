package ipc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/logger"
)

// ClientConfig holds the app side IPC configuration
type ClientConfig struct {
	URL            string
	SubjectPrefix  string
	RequestTimeout time.Duration // applied when the caller's context has no deadline
	ReadyTimeout   time.Duration
	// ReadyPollMax caps the wait between pings while the agent starts, default 1s
	ReadyPollMax time.Duration
}

// Client sends requests to the agent.
// Requests are never retried, a lost message surfaces as an error to the caller.
//
//go:generate mockgen -source=client.go -destination=../mocks/ipc_client.go -package=mocks -mock_names=Client=MockIPCClient
type Client interface {
	// WaitReady blocks until the agent answers ping or the ready timeout elapses.
	// A ready announcement from the agent cuts the wait between pings short.
	WaitReady(ctx context.Context) error
	// Send delivers a request and returns the agent's acknowledgement
	Send(ctx context.Context, req Request) (*Response, error)
	// Close closes the connection to the agent
	Close()
}

type client struct {
	config    ClientConfig
	connector adapter.NatsConnector
	json      adapter.JSON
	instance  string

	mu sync.Mutex
	nc adapter.NatsConn
}

// NewClient creates a client; the connection is established on first use
func NewClient(config ClientConfig, connector adapter.NatsConnector, json adapter.JSON) Client {
	return &client{
		config:    config,
		connector: connector,
		json:      json,
		instance:  uuid.NewString(),
	}
}

func (c *client) conn() (adapter.NatsConn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.nc != nil && c.nc.IsConnected() {
		return c.nc, nil
	}
	if c.nc != nil {
		c.nc.Close()
		c.nc = nil
	}

	nc, err := c.connector.Connect(c.config.URL,
		nats.Name("dbp-app-"+c.instance),
		nats.MaxReconnects(0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent at %s: %w", c.config.URL, err)
	}
	c.nc = nc
	return nc, nil
}

func (c *client) WaitReady(ctx context.Context) error {
	if c.config.ReadyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ReadyTimeout)
		defer cancel()
	}

	maxInterval := c.config.ReadyPollMax
	if maxInterval <= 0 {
		maxInterval = time.Second
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = min(50*time.Millisecond, maxInterval)
	b.MaxInterval = maxInterval
	b.MaxElapsedTime = 0
	b.Reset()

	announced := make(chan struct{}, 1)
	var sub *nats.Subscription
	defer func() {
		if sub != nil {
			_ = sub.Unsubscribe()
		}
	}()

	for attempt := 1; ; attempt++ {
		if sub == nil || !sub.IsValid() {
			sub = c.subscribeReady(announced)
		}

		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		_, err := c.Send(pingCtx, Request{Verb: VerbPing})
		cancel()
		if err == nil {
			logger.InfoCtx(ctx, "Agent is ready", zap.Int("attempts", attempt))
			return nil
		}

		next := b.NextBackOff()
		logger.DebugCtx(ctx, "Agent not ready yet", zap.Int("attempt", attempt), zap.Duration("retry_in", next), zap.Error(err))

		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("agent did not become ready: %w (last ping: %v)", ctx.Err(), err)
		case <-announced:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// subscribeReady listens for the agent's ready announcement.
// A nil subscription means the agent is not reachable yet and only pings are used.
func (c *client) subscribeReady(announced chan<- struct{}) *nats.Subscription {
	nc, err := c.conn()
	if err != nil {
		return nil
	}
	sub, err := nc.Subscribe(ReadySubject(c.config.SubjectPrefix), func(*nats.Msg) {
		select {
		case announced <- struct{}{}:
		default:
		}
	})
	if err != nil {
		logger.Warn("Failed to subscribe to ready announcements", zap.Error(err))
		return nil
	}
	if err := nc.Flush(); err != nil {
		logger.Warn("Failed to flush ready subscription", zap.Error(err))
	}
	return sub
}

func (c *client) Send(ctx context.Context, req Request) (*Response, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	nc, err := c.conn()
	if err != nil {
		return nil, err
	}

	data, err := c.json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	if _, ok := ctx.Deadline(); !ok && c.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.RequestTimeout)
		defer cancel()
	}

	msg, err := nc.RequestWithContext(ctx, CommandSubject(c.config.SubjectPrefix), data)
	if err != nil {
		if errors.Is(err, nats.ErrNoResponders) {
			return nil, fmt.Errorf("%s: %w", req.Verb, ErrNoResponder)
		}
		return nil, fmt.Errorf("failed to send %s: %w", req.Verb, err)
	}

	var resp Response
	if err := c.json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", req.Verb, err)
	}
	if resp.ID != req.ID {
		return nil, fmt.Errorf("response id %q does not match request %q", resp.ID, req.ID)
	}
	if !resp.OK {
		if resp.Error == ErrNotReady.Error() {
			return nil, fmt.Errorf("%s: %w", req.Verb, ErrNotReady)
		}
		return nil, &RemoteError{Verb: req.Verb, Message: resp.Error}
	}
	return &resp, nil
}

func (c *client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.nc != nil {
		c.nc.Close()
		c.nc = nil
	}
}
