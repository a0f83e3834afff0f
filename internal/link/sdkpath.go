package link

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

var (
	sdkPathOnce   sync.Once
	sdkPathCached string
)

// MacOSSDKPath resolves the active macOS SDK path via `xcrun
// --show-sdk-path`, caching the result for the process lifetime. It
// returns "" on any non-darwin host or if xcrun is unavailable, mirroring
// the juice C++ original's Platform/MacOS/SDKPath lookup.
func MacOSSDKPath() string {
	if runtime.GOOS != "darwin" {
		return ""
	}
	sdkPathOnce.Do(func() {
		path, err := exec.LookPath("xcrun")
		if err != nil {
			return
		}
		cmd := exec.Command(path, "--show-sdk-path")
		var out bytes.Buffer
		cmd.Stdout = &out
		if err := cmd.Run(); err != nil {
			return
		}
		sdkPathCached = strings.TrimSpace(out.String())
	})
	return sdkPathCached
}
