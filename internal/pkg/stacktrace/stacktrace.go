// Package stacktrace trims runtime stack dumps down to the frames that
// belong to this repository, keeping panic logs readable.
package stacktrace

import "strings"

// InternalPaths extracts "internal/...go:line" frames from a raw debug.Stack
// dump. It returns nil when no internal frame is present.
func InternalPaths(stack []byte) []string {
	var paths []string

	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}

		frame := line[idx+1:]
		if end := strings.IndexByte(frame, ' '); end != -1 {
			frame = frame[:end]
		}

		paths = append(paths, frame)
	}

	return paths
}
