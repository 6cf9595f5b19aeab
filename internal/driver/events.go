package driver

// Stage identifies where a unit currently is in the pipeline.
type Stage uint8

const (
	StageQueued Stage = iota
	StageScan
	StageGate
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageScan:
		return "scan"
	case StageGate:
		return "gate"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}

// Event is a progress notification for UI consumers. Events are advisory:
// dropping them never affects processing.
type Event struct {
	Path  string
	Stage Stage
	Err   error
}

// emit посылает событие, если канал задан; никогда не блокируется надолго —
// канал с буфером создаёт вызывающая сторона.
func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
