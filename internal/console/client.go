package console

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// Client abstracts the terminal so prompts can be driven by stdin or a script.
type Client interface {
	// ReadLine blocks until a complete line is received (without newline).
	// Returns io.EOF once input is exhausted.
	ReadLine() (string, error)

	// WriteLine sends a message followed by a newline.
	WriteLine(message string) error

	// Write sends raw text without a trailing newline, used for prompts.
	Write(data []byte) error
}

// StdioClient reads lines from an io.Reader and writes to an io.Writer.
type StdioClient struct {
	scanner *bufio.Scanner
	writer  *bufio.Writer
}

// NewStdioClient creates a StdioClient, typically over os.Stdin and os.Stdout.
func NewStdioClient(r io.Reader, w io.Writer) *StdioClient {
	return &StdioClient{
		scanner: bufio.NewScanner(r),
		writer:  bufio.NewWriter(w),
	}
}

// ReadLine reads a line from the reader (blocking).
// Returns the line without the trailing newline.
func (c *StdioClient) ReadLine() (string, error) {
	if c.scanner.Scan() {
		return strings.TrimRight(c.scanner.Text(), "\r"), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// WriteLine writes a message followed by a newline.
func (c *StdioClient) WriteLine(message string) error {
	if _, err := c.writer.WriteString(message + "\n"); err != nil {
		return err
	}
	return c.writer.Flush()
}

// Write writes raw bytes.
func (c *StdioClient) Write(data []byte) error {
	if _, err := c.writer.Write(data); err != nil {
		return err
	}
	return c.writer.Flush()
}

// ScriptClient replays a fixed list of input lines and records all output.
// It is used to drive interactive flows without a terminal.
type ScriptClient struct {
	mu     sync.Mutex
	lines  []string
	pos    int
	output strings.Builder
}

// NewScriptClient creates a ScriptClient that answers prompts with lines in order.
func NewScriptClient(lines ...string) *ScriptClient {
	return &ScriptClient{lines: lines}
}

// ReadLine returns the next scripted line, or io.EOF when the script is exhausted.
func (c *ScriptClient) ReadLine() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pos >= len(c.lines) {
		return "", io.EOF
	}
	line := c.lines[c.pos]
	c.pos++
	return line, nil
}

// WriteLine records a message followed by a newline.
func (c *ScriptClient) WriteLine(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.output.WriteString(message)
	c.output.WriteString("\n")
	return nil
}

// Write records raw output.
func (c *ScriptClient) Write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.output.Write(data)
	return nil
}

// Output returns everything written so far.
func (c *ScriptClient) Output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output.String()
}

// Remaining returns the number of unread scripted lines.
func (c *ScriptClient) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) - c.pos
}
