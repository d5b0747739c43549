package domain

// ViewState is what the view currently displays. It is exactly one of
// Loading, Failed or Ready.
type ViewState interface {
	viewState()
}

// Loading is the initial state: no record, no error.
type Loading struct{}

// Failed holds the user-visible failure message.
type Failed struct {
	Message string
}

// Ready holds the decoded record.
type Ready struct {
	Record Record
}

func (Loading) viewState() {}
func (Failed) viewState()  {}
func (Ready) viewState()   {}

// IsLoading reports whether the state is Loading.
func IsLoading(s ViewState) bool {
	_, ok := s.(Loading)
	return ok
}

// StateName returns the wire name of a state: loading, failed or ready.
func StateName(s ViewState) string {
	switch s.(type) {
	case Failed:
		return "failed"
	case Ready:
		return "ready"
	default:
		return "loading"
	}
}

// Snapshot is the JSON form of a view state.
type Snapshot struct {
	State   string  `json:"state"`
	Message string  `json:"message,omitempty"`
	Record  *Record `json:"record,omitempty"`
}

// NewSnapshot describes s for serialization.
func NewSnapshot(s ViewState) Snapshot {
	snap := Snapshot{State: StateName(s)}
	switch s := s.(type) {
	case Failed:
		snap.Message = s.Message
	case Ready:
		rec := s.Record
		snap.Record = &rec
	}
	return snap
}
