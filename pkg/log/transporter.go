package log

// Transporter is a log output destination.
type Transporter interface {
	// Name identifies the transporter in delivery failure messages.
	Name() string

	// Write delivers a single entry.
	Write(entry Entry) error

	// Close releases resources. Write is not called after Close.
	Close() error
}
