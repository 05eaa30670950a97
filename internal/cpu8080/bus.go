package cpu8080

// Bus is the interface the CPU interpreter is driven through: memory
// reads/writes at 16-bit addresses and the two cabinet-facing port
// operations used by IN/OUT. Implementations are expected to be
// synchronous and non-blocking, per spec.md's single-threaded
// cooperative model.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	In(port byte) byte
	Out(port byte, value byte)
}

// Faulter is an optional interface a Bus implementation can satisfy to
// report a fatal fault (currently only a write into the ROM region)
// detected during the most recent Write call. Step consults it after
// every instruction that may have written memory and surfaces the fault
// as its own error, terminating that Step cleanly.
type Faulter interface {
	Fault() error
}

func checkFault(bus Bus) error {
	if f, ok := bus.(Faulter); ok {
		return f.Fault()
	}
	return nil
}
