package engine

// Stage identifies what the engine is doing to a file.
type Stage uint8

const (
	StageNone Stage = iota
	// StageCheck covers tokenization and rule dispatch.
	StageCheck
	// StageFix covers the re-tokenizing fix passes.
	StageFix
)

// Status is the lifecycle of one file within a run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress notification from the parallel driver.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

func emit(ch chan<- Event, ev Event) {
	if ch != nil {
		ch <- ev
	}
}
