package ipc

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Verb names a message understood by the agent
type Verb string

const (
	VerbProfileSaved             Verb = "profileSaved"
	VerbAppLaunched              Verb = "appLaunched"
	VerbStartImmediateOperations Verb = "startImmediateOperations"
	VerbStartScheduledOperations Verb = "startScheduledOperations"
	VerbRunAllOptOuts            Verb = "runAllOptOuts"
	VerbOpenBrowser              Verb = "openBrowser"
	VerbGetDebugMetadata         Verb = "getDebugMetadata"
	VerbPing                     Verb = "ping"
)

var (
	// ErrNotReady is returned by the agent until it has finished starting up
	ErrNotReady = errors.New("agent not ready")

	// ErrNoResponder is returned when no agent is listening on the command subject
	ErrNoResponder = errors.New("no agent is listening")

	// ErrUnknownVerb is returned for verbs the agent does not understand
	ErrUnknownVerb = errors.New("unknown verb")
)

// Request is a command sent from the app to the agent
type Request struct {
	ID          string `json:"id"`
	Verb        Verb   `json:"verb"`
	ShowWebView bool   `json:"showWebView,omitempty"`
	Domain      string `json:"domain,omitempty"`
}

// Validate checks the payload carried by the verb
func (r Request) Validate() error {
	switch r.Verb {
	case VerbOpenBrowser:
		if r.Domain == "" {
			return fmt.Errorf("openBrowser requires a domain")
		}
		if _, err := url.Parse(r.Domain); err != nil {
			return fmt.Errorf("invalid domain %q: %w", r.Domain, err)
		}
	case VerbProfileSaved, VerbAppLaunched, VerbStartImmediateOperations, VerbStartScheduledOperations,
		VerbRunAllOptOuts, VerbGetDebugMetadata, VerbPing:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVerb, r.Verb)
	}
	return nil
}

// Response acknowledges a request.
// A request is acknowledged once the agent accepted it, long operations keep running afterwards.
type Response struct {
	ID       string         `json:"id"`
	OK       bool           `json:"ok"`
	Error    string         `json:"error,omitempty"`
	Metadata *DebugMetadata `json:"metadata,omitempty"`
}

// DebugMetadata describes the running agent
type DebugMetadata struct {
	AgentVersion    string     `json:"agentVersion"`
	AgentPID        int        `json:"agentPid"`
	ReadySince      *time.Time `json:"readySince,omitempty"`
	Scheduled       bool       `json:"scheduled"`
	Running         bool       `json:"running"`
	LastRunStarted  *time.Time `json:"lastRunStarted,omitempty"`
	LastRunFinished *time.Time `json:"lastRunFinished,omitempty"`
	ScansRun        int64      `json:"scansRun"`
	OptOutsRun      int64      `json:"optOutsRun"`
	Failures        int64      `json:"failures"`
}

// RemoteError is an error reported by the agent in a response
type RemoteError struct {
	Verb    Verb
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("agent rejected %s: %s", e.Verb, e.Message)
}

// CommandSubject returns the subject the agent receives requests on
func CommandSubject(prefix string) string {
	return prefix + ".commands"
}

// ReadySubject returns the subject the agent announces readiness on
func ReadySubject(prefix string) string {
	return prefix + ".ready"
}
