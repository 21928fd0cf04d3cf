package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/OB11TO/Computer-Graphics/pkg/core"
)

// WebLogger implements core.Logger by writing render messages to the
// server log, tagged with the render they belong to
type WebLogger struct {
	renderID string
	out      *log.Logger
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, out *log.Logger) core.Logger {
	return &WebLogger{
		renderID: renderID,
		out:      out,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	wl.out.Printf("[%s] %s", wl.renderID, message)
}
