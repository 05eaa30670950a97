//go:build headless

package input

import "github.com/otley-arcade/invaders8080/internal/cabinet"

// Poll is a no-op in headless builds: there is no keyboard to read.
func Poll(_ *cabinet.Machine) {}
