package loginitem

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/ipc"
	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/pixels"
)

// Completion receives the outcome of a fire-and-forget call; it may be nil
type Completion func(err error)

// Bridge relays scheduler commands and lifecycle events from the app to the agent.
// Calls return immediately and report through their completion.
//
//go:generate mockgen -source=bridge.go -destination=../mocks/bridge.go -package=mocks -mock_names=Bridge=MockBridge
type Bridge interface {
	ProfileSaved(completion Completion)
	AppLaunched(completion Completion)
	DataDeleted(completion Completion)
	StartImmediateOperations(showWebView bool, completion Completion)
	StartScheduledOperations(showWebView bool, completion Completion)
	RunAllOptOuts(showWebView bool, completion Completion)
	OpenBrowser(domain string, completion Completion)
	GetDebugMetadata(ctx context.Context) (*ipc.DebugMetadata, error)
	// Wait blocks until every call in flight has completed
	Wait()
}

type bridge struct {
	item   LoginItem
	client ipc.Client
	pixels pixels.Handler

	wg sync.WaitGroup
}

// NewBridge creates the app side bridge
func NewBridge(item LoginItem, client ipc.Client, pixelHandler pixels.Handler) Bridge {
	return &bridge{item: item, client: client, pixels: pixelHandler}
}

// ProfileSaved enables the agent, waits for it to announce readiness and then notifies it
func (b *bridge) ProfileSaved(completion Completion) {
	b.async(completion, func(ctx context.Context) error {
		if err := b.ensureAgent(ctx); err != nil {
			return err
		}
		return b.send(ctx, ipc.Request{Verb: ipc.VerbProfileSaved})
	})
}

// AppLaunched is only relayed when the agent was enabled by a saved profile
func (b *bridge) AppLaunched(completion Completion) {
	b.async(completion, func(ctx context.Context) error {
		if !b.item.IsEnabled() {
			logger.DebugCtx(ctx, "Agent not enabled, skipping appLaunched")
			return nil
		}
		if err := b.ensureAgent(ctx); err != nil {
			return err
		}
		return b.send(ctx, ipc.Request{Verb: ipc.VerbAppLaunched})
	})
}

// DataDeleted stops the agent; nothing is left for it to do
func (b *bridge) DataDeleted(completion Completion) {
	b.async(completion, func(ctx context.Context) error {
		b.client.Close()
		return b.item.Disable(ctx)
	})
}

func (b *bridge) StartImmediateOperations(showWebView bool, completion Completion) {
	b.async(completion, func(ctx context.Context) error {
		return b.send(ctx, ipc.Request{Verb: ipc.VerbStartImmediateOperations, ShowWebView: showWebView})
	})
}

func (b *bridge) StartScheduledOperations(showWebView bool, completion Completion) {
	b.async(completion, func(ctx context.Context) error {
		return b.send(ctx, ipc.Request{Verb: ipc.VerbStartScheduledOperations, ShowWebView: showWebView})
	})
}

func (b *bridge) RunAllOptOuts(showWebView bool, completion Completion) {
	b.async(completion, func(ctx context.Context) error {
		return b.send(ctx, ipc.Request{Verb: ipc.VerbRunAllOptOuts, ShowWebView: showWebView})
	})
}

func (b *bridge) OpenBrowser(domain string, completion Completion) {
	b.async(completion, func(ctx context.Context) error {
		return b.send(ctx, ipc.Request{Verb: ipc.VerbOpenBrowser, Domain: domain})
	})
}

func (b *bridge) GetDebugMetadata(ctx context.Context) (*ipc.DebugMetadata, error) {
	verb := string(ipc.VerbGetDebugMetadata)
	b.pixels.Fire(pixels.IPCCalled(verb))
	resp, err := b.client.Send(ctx, ipc.Request{Verb: ipc.VerbGetDebugMetadata})
	if err != nil {
		b.pixels.Fire(pixels.IPCFailed(verb, err))
		return nil, err
	}
	b.pixels.Fire(pixels.IPCAcknowledged(verb))
	return resp.Metadata, nil
}

func (b *bridge) Wait() {
	b.wg.Wait()
}

// ensureAgent starts the agent if needed and waits for its readiness handshake
func (b *bridge) ensureAgent(ctx context.Context) error {
	if err := b.item.Enable(ctx); err != nil {
		return fmt.Errorf("failed to enable login item: %w", err)
	}
	if err := b.client.WaitReady(ctx); err != nil {
		return err
	}
	return nil
}

func (b *bridge) send(ctx context.Context, req ipc.Request) error {
	verb := string(req.Verb)
	b.pixels.Fire(pixels.IPCCalled(verb))
	if _, err := b.client.Send(ctx, req); err != nil {
		b.pixels.Fire(pixels.IPCFailed(verb, err))
		logger.WarnCtx(ctx, "IPC call failed", zap.String("verb", verb), zap.Error(err))
		return err
	}
	b.pixels.Fire(pixels.IPCAcknowledged(verb))
	return nil
}

func (b *bridge) async(completion Completion, fn func(ctx context.Context) error) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		err := fn(context.Background())
		if completion != nil {
			completion(err)
		}
	}()
}
