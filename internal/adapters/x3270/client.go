// Package x3270 drives an external s3270/x3270-family scripting binary and
// exposes it as a ports.Session. The binary owns the terminal protocol; this
// package only speaks its line-oriented scripting interface over
// stdin/stdout: one action per line in, "data:" lines plus an ok/error
// verdict out.
package x3270

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os/exec"
	"strings"
	"time"

	"github.com/greenscreenhq/greenscreen/internal/logging"
)

// DefaultModels is the fallback order of terminal models to negotiate,
// mirroring what operators use in practice.
var DefaultModels = []string{"3279-2", "3278-2", "3278-4"}

type options struct {
	binary  string
	models  []string
	ssl     bool
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures Connect.
type Option func(*options)

// WithBinary sets the scripting binary name or path. Defaults to "s3270".
func WithBinary(binary string) Option {
	return func(o *options) { o.binary = binary }
}

// WithModels overrides the terminal model fallback list.
func WithModels(models ...string) Option {
	return func(o *options) { o.models = models }
}

// WithSSL enables a TLS connection to the host.
func WithSSL(ssl bool) Option {
	return func(o *options) { o.ssl = ssl }
}

// WithTimeout bounds the connect handshake per model. Defaults to 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Client is a live scripted terminal session.
type Client struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	out    *bufio.Reader
	logger *slog.Logger
	model  string
}

// CheckInstalled verifies the scripting binary is on PATH and returns its
// resolved location.
func CheckInstalled(binary string) (string, error) {
	if binary == "" {
		binary = "s3270"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH, install the x3270 suite: %w", binary, err)
	}
	return path, nil
}

// Probe checks TCP reachability of the host before spending time on a full
// terminal negotiation.
func Probe(host string, port int, timeout time.Duration) error {
	addr := net.JoinHostPort(host, fmt.Sprint(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("host %s is not reachable: %w", addr, err)
	}
	return conn.Close()
}

// Connect starts the scripting binary and negotiates a session, trying each
// terminal model in order until one succeeds.
func Connect(host string, port int, opts ...Option) (*Client, error) {
	o := options{
		binary:  "s3270",
		models:  DefaultModels,
		timeout: 30 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	path, err := CheckInstalled(o.binary)
	if err != nil {
		return nil, err
	}

	target := net.JoinHostPort(host, fmt.Sprint(port))
	if o.ssl {
		target = "L:" + target
	}

	var lastErr error
	for _, model := range o.models {
		client, err := startSession(path, target, model, o)
		if err == nil {
			o.logger.Info("terminal session established", "host", target, "model", model)
			return client, nil
		}
		o.logger.Warn("model negotiation failed", "model", model, "err", err)
		lastErr = err
	}
	return nil, fmt.Errorf("connect to %s: all models failed: %w", target, lastErr)
}

func startSession(path, target, model string, o options) (*Client, error) {
	cmd := exec.Command(path, "-model", model, "-utf8", target)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("open stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", path, err)
	}

	client := &Client{
		cmd:    cmd,
		stdin:  stdin,
		out:    bufio.NewReader(stdout),
		logger: o.logger,
		model:  model,
	}

	// Block until the host presents an input field, or give up on this model.
	if _, err := client.run(fmt.Sprintf("Wait(%d,InputField)", int(o.timeout.Seconds()))); err != nil {
		client.kill()
		return nil, err
	}
	return client, nil
}

// Model returns the negotiated terminal model.
func (c *Client) Model() string {
	return c.model
}

// MoveToFirstField implements ports.Session.
func (c *Client) MoveToFirstField() error {
	_, err := c.run("Home()")
	return err
}

// SendText implements ports.Session.
func (c *Client) SendText(text string) error {
	_, err := c.run(fmt.Sprintf("String(%q)", text))
	return err
}

// SendTab implements ports.Session.
func (c *Client) SendTab() error {
	_, err := c.run("Tab()")
	return err
}

// SendEnter implements ports.Session.
func (c *Client) SendEnter() error {
	_, err := c.run("Enter()")
	return err
}

// GetScreen implements ports.Session. It returns the full-screen text, one
// line per row.
func (c *Client) GetScreen() (string, error) {
	data, err := c.run("Ascii()")
	if err != nil {
		return "", err
	}
	return strings.Join(data, "\n"), nil
}

// Close terminates the scripting process. It asks politely first and kills
// the process if the quit action fails.
func (c *Client) Close() error {
	if _, err := c.run("Quit()"); err != nil {
		c.kill()
		return nil
	}
	return c.cmd.Wait()
}

func (c *Client) kill() {
	if c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
	}
	_ = c.cmd.Wait()
}

// run submits one action and reads its response.
func (c *Client) run(action string) ([]string, error) {
	c.logger.Debug("terminal action", "action", action)
	if _, err := fmt.Fprintln(c.stdin, action); err != nil {
		return nil, fmt.Errorf("write action: %w", err)
	}
	data, ok, err := readResponse(c.out)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !ok {
		return data, fmt.Errorf("action %s failed: %s", action, strings.Join(data, "; "))
	}
	return data, nil
}

// readResponse consumes one scripting response: any number of "data:"
// lines, a status line, and a final "ok" or "error" verdict.
func readResponse(r *bufio.Reader) (data []string, ok bool, err error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return data, false, err
		}
		line = strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		case line == "ok":
			return data, true, nil
		case line == "error":
			return data, false, nil
		default:
			// Status line; not needed by callers.
		}
	}
}
