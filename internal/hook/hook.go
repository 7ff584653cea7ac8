// Package hook invokes an external interpreter command when a card is
// confirmed. The command receives a JSON request on stdin and answers with
// a JSON response on stdout, so any executable can act as the interpreter.
package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// Request is sent to the interpreter command on stdin.
type Request struct {
	Card      string `json:"card"`
	CardIndex int    `json:"cardIndex"`
	Gesture   string `json:"gesture"`
	SessionID string `json:"sessionId"`
}

// Response is read from the interpreter command's stdout.
type Response struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	Interpretation string `json:"interpretation,omitempty"`
}

// Runner executes the interpreter command with a timeout.
type Runner struct {
	command string
	timeout time.Duration
}

// NewRunner creates a Runner for the given command path.
func NewRunner(command string, timeout time.Duration) *Runner {
	return &Runner{
		command: command,
		timeout: timeout,
	}
}

// Run executes the interpreter for one confirmed card and returns its
// parsed response.
func (r *Runner) Run(req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.command)

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	cmd.Stdin = bytes.NewReader(reqJSON)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("interpreter timeout after %s", r.timeout)
	}
	if err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("interpreter failed: %w, stderr: %s", err, stderr.String())
		}
		return nil, fmt.Errorf("interpreter failed: %w", err)
	}

	var response Response
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return nil, fmt.Errorf("parse interpreter response: %w, stdout: %s", err, stdout.String())
	}

	return &response, nil
}
