package dma

// Status is the decoded state of the controller. Values match
// NEORV32_DMA_STATUS_enum of the C library.
type Status int

const (
	StatusErrorWrite Status = -2 // bus error during write access
	StatusErrorRead  Status = -1 // bus error during read access
	StatusIdle       Status = 0
	StatusBusy       Status = 1 // transfer in progress
)

func (s Status) String() string {
	switch s {
	case StatusErrorWrite:
		return "error-write"
	case StatusErrorRead:
		return "error-read"
	case StatusIdle:
		return "idle"
	case StatusBusy:
		return "busy"
	}
	return "unknown"
}
