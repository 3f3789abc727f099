package seeder

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// progress prints stage and detail lines prefixed with the elapsed time
// since the run started.
type progress struct {
	start time.Time
}

func newProgress() *progress {
	return &progress{start: time.Now()}
}

func (p *progress) step(format string, args ...interface{}) {
	color.Cyan("[%4.1fs] %s", time.Since(p.start).Seconds(), fmt.Sprintf(format, args...))
}

func (p *progress) detail(format string, args ...interface{}) {
	color.Green("[%4.1fs]   %s", time.Since(p.start).Seconds(), fmt.Sprintf(format, args...))
}
