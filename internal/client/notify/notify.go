// Package notify renders login feedback and redirects for the terminal client.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Console prints notifications to w and mirrors them to the log.
type Console struct {
	w   io.Writer
	log *zap.Logger
}

// NewConsole returns a Console writing to w. A nil log discards logs.
func NewConsole(w io.Writer, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{w: w, log: log}
}

func (c *Console) Success(message, description string) {
	c.print("✅", message, description)
	c.log.Info(message, zap.String("description", description))
}

func (c *Console) Warning(message, description string) {
	c.print("⚠️", message, description)
	c.log.Warn(message, zap.String("description", description))
}

func (c *Console) Error(message, description string) {
	c.print("❌", message, description)
	c.log.Error(message, zap.String("description", description))
}

func (c *Console) print(icon, message, description string) {
	if description == "" {
		fmt.Fprintf(c.w, "%s %s\n", icon, message)
		return
	}
	fmt.Fprintf(c.w, "%s %s: %s\n", icon, message, description)
}

// ConsoleRouter prints the destination and remembers the last one so the
// caller can continue from it.
type ConsoleRouter struct {
	w    io.Writer
	mu   sync.Mutex
	last string
}

// NewConsoleRouter returns a ConsoleRouter writing to w.
func NewConsoleRouter(w io.Writer) *ConsoleRouter {
	return &ConsoleRouter{w: w}
}

func (r *ConsoleRouter) Navigate(path string) {
	r.mu.Lock()
	r.last = path
	r.mu.Unlock()
	fmt.Fprintf(r.w, "-> %s\n", path)
}

// Last returns the most recent destination, or "" if none.
func (r *ConsoleRouter) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
