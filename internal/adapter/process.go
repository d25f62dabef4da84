package adapter

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// Process is a started child process
type Process interface {
	Pid() int
	Signal(sig os.Signal) error
	Wait() error
}

// ProcessLauncher defines an interface for spawning processes to enable mocking
//
//go:generate mockgen -source=process.go -destination=../mocks/process.go -package=mocks -mock_names=ProcessLauncher=MockProcessLauncher,Process=MockProcess
type ProcessLauncher interface {
	// Start launches a long-running process detached from the caller's stdio
	Start(path string, args []string, env []string) (Process, error)
	// Find returns the running process with the given pid
	Find(pid int) (Process, error)
	// Run executes a process to completion, feeding stdin and capturing stdout and stderr
	Run(ctx context.Context, path string, args []string, stdin []byte) (stdout []byte, stderr []byte, err error)
}

// RealProcessLauncher implements ProcessLauncher with os/exec
type RealProcessLauncher struct{}

// NewProcessLauncher creates a new real process launcher
func NewProcessLauncher() ProcessLauncher {
	return &RealProcessLauncher{}
}

func (l *RealProcessLauncher) Start(path string, args []string, env []string) (Process, error) {
	cmd := exec.Command(path, args...)
	cmd.Env = append(os.Environ(), env...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

func (l *RealProcessLauncher) Find(pid int) (Process, error) {
	p, err := os.FindProcess(pid)
	if err != nil {
		return nil, err
	}
	return &osProcess{p: p}, nil
}

func (l *RealProcessLauncher) Run(ctx context.Context, path string, args []string, stdin []byte) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Signal(sig os.Signal) error {
	return p.cmd.Process.Signal(sig)
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}

// osProcess is a process this launcher did not start
type osProcess struct {
	p *os.Process
}

func (p *osProcess) Pid() int {
	return p.p.Pid
}

func (p *osProcess) Signal(sig os.Signal) error {
	return p.p.Signal(sig)
}

func (p *osProcess) Wait() error {
	_, err := p.p.Wait()
	return err
}
