package supervisor

import (
	"strings"

	"github.com/traykeep/traykeep/internal/proctable"
)

// Match returns the processes whose command line contains pattern, skipping
// self. Matching is a plain substring test, so an unrelated process that
// mentions the same file name (an editor with the script open, say) is
// matched too.
func Match(procs []proctable.Process, pattern string, self int32) []proctable.Process {
	if pattern == "" {
		return nil
	}
	var out []proctable.Process
	for _, p := range procs {
		if p.PID == self {
			continue
		}
		if strings.Contains(p.Cmdline, pattern) {
			out = append(out, p)
		}
	}
	return out
}
