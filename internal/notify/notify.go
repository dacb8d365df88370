// Package notify is the platform notification boundary. Desktops
// without a usable notifier degrade to a silent no-op rather than an
// error.
package notify

import (
	"os/exec"
	"runtime"
)

type Notifier interface {
	Notify(title, body string) error
}

// Desktop returns the best notifier for the current platform, checked
// once. Available reports whether it will actually show anything, so
// callers can tell the user a single time that the capability is
// missing.
func Desktop() Notifier {
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("osascript"); err == nil {
			return &osaNotifier{bin: path}
		}
	case "linux":
		if path, err := exec.LookPath("notify-send"); err == nil {
			return &sendNotifier{bin: path}
		}
	}
	return noopNotifier{}
}

func Available(n Notifier) bool {
	_, noop := n.(noopNotifier)
	return !noop
}

type sendNotifier struct {
	bin string
}

func (n *sendNotifier) Notify(title, body string) error {
	return exec.Command(n.bin, "--app-name", "lazybear", title, body).Run()
}

type osaNotifier struct {
	bin string
}

func (n *osaNotifier) Notify(title, body string) error {
	script := "display notification " + osaQuote(body) + " with title " + osaQuote(title)
	return exec.Command(n.bin, "-e", script).Run()
}

func osaQuote(s string) string {
	out := make([]rune, 0, len(s)+2)
	out = append(out, '"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(append(out, '"'))
}

type noopNotifier struct{}

func (noopNotifier) Notify(title, body string) error { return nil }
