package log

import (
	"encoding/json"
	"time"
)

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value any
}

// Entry is a structured log entry. Fields keep the order they were added in.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Caller    string
	RequestID string
	Message   string
	Fields    []Field
}

// Get returns the value of the last field named key.
func (e Entry) Get(key string) (any, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i].Value, true
		}
	}
	return nil, false
}

// appendPairs appends alternating key/value arguments to fields.
// Non-string keys and a trailing key without a value are dropped.
func appendPairs(fields []Field, keysAndValues []any) []Field {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		value := keysAndValues[i+1]
		if err, isErr := value.(error); isErr && err != nil {
			value = err.Error()
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields
}

// MarshalJSON flattens the entry into a single JSON object.
// Caller and request_id are omitted when empty.
func (e Entry) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Fields)+5)
	for _, f := range e.Fields {
		m[f.Key] = f.Value
	}

	m["timestamp"] = e.Timestamp.UTC().Format(time.RFC3339)
	m["level"] = e.Level.String()
	m["msg"] = e.Message
	if e.Caller != "" {
		m["caller"] = e.Caller
	}
	if e.RequestID != "" {
		m["request_id"] = e.RequestID
	}

	return json.Marshal(m)
}
