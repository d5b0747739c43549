package transporters

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"cosmos-daily/pkg/log"
)

var levelColors = map[log.Level]*color.Color{
	log.Debug: color.New(color.FgWhite, color.Faint),
	log.Info:  color.New(color.FgCyan),
	log.Warn:  color.New(color.FgYellow),
	log.Error: color.New(color.FgRed, color.Bold),
}

var keyColor = color.New(color.Faint)

// Console writes human-readable, colorized lines for local development:
//
//	15:04:05 INFO  request completed method=GET path=/ status=200
type Console struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewConsole creates a console transporter that writes to os.Stderr.
func NewConsole() *Console {
	return &Console{writer: os.Stderr}
}

// NewConsoleWithWriter creates a console transporter that writes to w.
func NewConsoleWithWriter(w io.Writer) *Console {
	return &Console{writer: w}
}

func (c *Console) Name() string {
	return "console"
}

func (c *Console) Write(entry log.Entry) error {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format("15:04:05"))
	b.WriteByte(' ')
	level := fmt.Sprintf("%-5s", entry.Level.String())
	if lc, ok := levelColors[entry.Level]; ok {
		level = lc.Sprint(level)
	}
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if entry.RequestID != "" {
		b.WriteString(" " + keyColor.Sprint("request_id=") + entry.RequestID)
	}
	for _, f := range entry.Fields {
		fmt.Fprintf(&b, " %s%v", keyColor.Sprint(f.Key+"="), f.Value)
	}
	if entry.Caller != "" {
		b.WriteString(" " + keyColor.Sprint("("+entry.Caller+")"))
	}
	b.WriteByte('\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.writer, b.String())
	return err
}

func (c *Console) Close() error {
	return nil
}
