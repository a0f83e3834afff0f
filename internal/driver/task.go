// Package driver reproduces the juice C++ original's Driver/DriverTask
// mtime-skip check (original_source/_INDEX.md): before re-invoking an
// expensive downstream step (object emission, linking), the driver compares
// the output's modification time against its inputs' and skips the step
// when the output is already newer than everything that feeds it. This is
// named as an external collaborator by the compiler's pipeline rather than
// a THE CORE stage, so it lives in its own package the cmd layer calls
// into, not inside internal/irgen or internal/link.
package driver

import "os"

// ShouldSkip reports whether output is already up to date with respect to
// every path in inputs: it exists, and its mtime is not older than any
// input's. A missing or unreadable output, or any unreadable input, forces
// the step to run (returns false) rather than risk a stale artifact.
func ShouldSkip(output string, inputs ...string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return false
	}

	for _, in := range inputs {
		inInfo, err := os.Stat(in)
		if err != nil {
			return false
		}
		if inInfo.ModTime().After(outInfo.ModTime()) {
			return false
		}
	}
	return true
}
