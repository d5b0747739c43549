// Package transporters contains log.Transporter implementations.
package transporters

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"cosmos-daily/pkg/log"
)

// Stdout writes entries as line-delimited JSON.
type Stdout struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewStdout creates a transporter that writes to os.Stdout.
func NewStdout() *Stdout {
	return &Stdout{writer: os.Stdout}
}

// NewStdoutWithWriter creates a transporter that writes to w.
func NewStdoutWithWriter(w io.Writer) *Stdout {
	return &Stdout{writer: w}
}

func (s *Stdout) Name() string {
	return "stdout"
}

// Write marshals the entry to one JSON line.
func (s *Stdout) Write(entry log.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.writer.Write(data)
	return err
}

func (s *Stdout) Close() error {
	return nil
}
