package video

// Output is the minimal backend contract the cabinet shell drives once
// per frame, trimmed from the teacher's VideoOutput interface to the
// operations this single fixed-resolution display actually needs.
type Output interface {
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	// UpdateFrame pushes a newly decoded frame for display.
	UpdateFrame(frame []byte) error

	GetFrameCount() uint64
}
