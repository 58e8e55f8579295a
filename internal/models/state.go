package models

// IndexStatus is the lifecycle stage of a widget's index.
type IndexStatus int

const (
	IndexUnloaded IndexStatus = iota
	IndexLoading
	IndexLoaded
	IndexFailed
)

func (s IndexStatus) String() string {
	switch s {
	case IndexUnloaded:
		return "unloaded"
	case IndexLoading:
		return "loading"
	case IndexLoaded:
		return "loaded"
	case IndexFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IndexState holds the index together with its status. Only a Loaded state carries an index,
// only a Failed state carries an error.
type IndexState struct {
	status IndexStatus
	index  SearchIndex
	err    error
}

// Unloaded is the state before any fetch has been issued.
func Unloaded() IndexState {
	return IndexState{status: IndexUnloaded}
}

// Loading is the state while the single fetch is in flight.
func Loading() IndexState {
	return IndexState{status: IndexLoading}
}

// Loaded wraps a successfully parsed index.
func Loaded(index SearchIndex) IndexState {
	if index == nil {
		index = SearchIndex{}
	}
	return IndexState{status: IndexLoaded, index: index}
}

// Failed records a load failure. A failed state is permanent.
func Failed(err error) IndexState {
	return IndexState{status: IndexFailed, err: err}
}

// Status returns the lifecycle stage.
func (s IndexState) Status() IndexStatus {
	return s.status
}

// Index returns the loaded index; ok is false in every other state.
func (s IndexState) Index() (SearchIndex, bool) {
	if s.status != IndexLoaded {
		return nil, false
	}
	return s.index, true
}

// Err returns the load error of a Failed state.
func (s IndexState) Err() error {
	return s.err
}

// Settled reports whether the fetch has completed, successfully or not.
func (s IndexState) Settled() bool {
	return s.status == IndexLoaded || s.status == IndexFailed
}
