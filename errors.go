// errors.go - error kinds surfaced to the embedding host

package cpu8080

import "fmt"

// ErrOutOfBounds is returned by Memory.Load/Store when an address falls
// outside [0, R+M). Writes to the ROM region are not an error (see
// memory.go); this sentinel only covers genuinely invalid addresses.
var ErrOutOfBounds = &OutOfBoundsError{}

// OutOfBoundsError reports the offending address so hosts can log it.
type OutOfBoundsError struct {
	Addr uint16
}

func (e *OutOfBoundsError) Error() string {
	if e.Addr == 0 && e == ErrOutOfBounds {
		return "cpu8080: address out of bounds"
	}
	return fmt.Sprintf("cpu8080: address %#04x out of bounds", e.Addr)
}

func (e *OutOfBoundsError) Is(target error) bool {
	_, ok := target.(*OutOfBoundsError)
	return ok
}

// ErrUnsupportedInterrupt is returned when the message queue requests
// RST n with n outside 0..=7. This is a programmer error in the host,
// not a recoverable runtime condition, so Run stops and surfaces it.
var ErrUnsupportedInterrupt = fmt.Errorf("cpu8080: unsupported interrupt vector")

// RomError wraps a failure from the external ROM loader (file I/O,
// malformed image). The core never originates these itself; the host
// programs under cmd/ build them when reading a ROM image fails.
type RomError struct {
	Op  string
	Err error
}

func (e *RomError) Error() string {
	return fmt.Sprintf("cpu8080: rom %s: %v", e.Op, e.Err)
}

func (e *RomError) Unwrap() error {
	return e.Err
}
