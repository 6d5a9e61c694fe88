package apierr

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const pkgPath = "codeberg.org/algopatterns/apierrors/apierr"

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// captureStack records the call stack of the code constructing an error.
// Frames belonging to the constructors themselves are dropped so the first
// frame is the construction call site.
func captureStack(name, message string) []string {
	header := headerLines(name, message)

	st, ok := pkgerrors.New(message).(stackTracer)
	if !ok {
		return header
	}

	frames := st.StackTrace()
	for len(frames) > 0 && isConstructorFrame(frames[0]) {
		frames = frames[1:]
	}

	lines := make([]string, 0, len(header)+len(frames))
	lines = append(lines, header...)
	for _, f := range frames {
		fn, file, _ := strings.Cut(fmt.Sprintf("%+s", f), "\n\t")
		lines = append(lines, fmt.Sprintf("    at %s (%s:%d)", fn, file, f))
	}
	return lines
}

func isConstructorFrame(f pkgerrors.Frame) bool {
	fn, _, _ := strings.Cut(fmt.Sprintf("%+s", f), "\n\t")
	local, ok := strings.CutPrefix(fn, pkgPath+".")
	if !ok {
		return false
	}
	return strings.HasPrefix(local, "New") ||
		strings.HasPrefix(local, "new") ||
		strings.HasPrefix(local, "capture")
}

// headerLines splits "<name>: <message>" into lines so multi-line messages
// keep one entry per line.
func headerLines(name, message string) []string {
	lines := strings.Split(name+": "+message, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
