//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// maxOutput caps how much terminal output a test keeps; older bytes are dropped
const maxOutput = 1 << 20

var binPath = "empsearch_e2e" // built by TestMain

const (
	KeyEnter = "\r"
	KeyEsc   = "\x1b"
	KeyCtrlC = "\x03"
	KeyQuit  = "q"
	KeyPager = "p"
	KeyHelp  = "?"
)

// ansiRe matches the escape sequences Bubble Tea emits (CSI, OSC, charset
// selection, keypad mode) plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b[=>])|` +
		`\r`,
)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// TUITestFramework runs empsearch in a pseudo terminal and records everything
// it draws
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	service   *fakeService

	mu     sync.Mutex
	output []byte
}

func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t}
}

// StartApp launches empsearch in a PTY. The workspace config and the fake
// service endpoint are passed before args, so args can override them.
func (tf *TUITestFramework) StartApp(args ...string) error {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return err
		}
	}

	argv := []string{"--config", tf.ConfigPath()}
	if tf.service != nil {
		argv = append(argv, "--endpoint", tf.service.URL())
	}
	tf.cmd = exec.Command(binPath, append(argv, args...)...)
	tf.cmd.Dir = tf.workspace // log file lands here
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+tf.workspace,
		"EMPSEARCH_E2E_TEST=1",
	)

	ptmx, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("open pty: %w", err)
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 40, Cols: 120}); err != nil {
		ptmx.Close()
		tty.Close()
		return fmt.Errorf("size pty: %w", err)
	}
	tf.pty, tf.tty = ptmx, tty
	tf.cmd.Stdin, tf.cmd.Stdout, tf.cmd.Stderr = tty, tty, tty

	if err := tf.cmd.Start(); err != nil {
		ptmx.Close()
		tty.Close()
		return fmt.Errorf("start %s: %w", binPath, err)
	}

	go tf.record(ptmx)
	return nil
}

// record copies terminal output into tf.output until the pty closes
func (tf *TUITestFramework) record(ptmx *os.File) {
	chunk := make([]byte, 8192)
	for {
		n, err := ptmx.Read(chunk)
		if n > 0 {
			tf.mu.Lock()
			tf.output = append(tf.output, chunk[:n]...)
			if over := len(tf.output) - maxOutput; over > 0 {
				tf.output = tf.output[over:]
			}
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

func (tf *TUITestFramework) SendEnter() error { return tf.SendKeys(KeyEnter) }
func (tf *TUITestFramework) SendCtrlC() error { return tf.SendKeys(KeyCtrlC) }
func (tf *TUITestFramework) PressQuit() error { return tf.SendKeys(KeyQuit) }
func (tf *TUITestFramework) OpenPager() error { return tf.SendKeys(KeyPager) }
func (tf *TUITestFramework) Type(text string) error {
	return tf.SendKeys(text)
}

// Browse leaves the query input so single keys act as commands. It pauses
// after esc so the next key is not read as alt+key.
func (tf *TUITestFramework) Browse() error {
	if err := tf.SendKeys(KeyEsc); err != nil {
		return err
	}
	time.Sleep(150 * time.Millisecond)
	return nil
}

// Search types query into the input and submits it
func (tf *TUITestFramework) Search(query string) error {
	if err := tf.Type(query); err != nil {
		return err
	}
	return tf.SendEnter()
}

// Quit leaves the query input and sends the quit command
func (tf *TUITestFramework) Quit() error {
	if err := tf.Browse(); err != nil {
		return err
	}
	return tf.PressQuit()
}

// WaitExit reports whether the process ended within timeout, and with what
// error
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (bool, error) {
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case err := <-done:
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

// Ready waits for the marker the app prints after its first frame
func (tf *TUITestFramework) Ready() bool {
	return tf.OutputContains("__READY__", 5*time.Second)
}

// SeePlain waits up to three seconds for text in the ANSI-stripped output
func (tf *TUITestFramework) SeePlain(text string) bool {
	return tf.OutputContainsPlain(text, 3*time.Second)
}

func (tf *TUITestFramework) OutputContains(text string, timeout time.Duration) bool {
	return tf.poll(tf.Snapshot, text, timeout)
}

func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	return tf.poll(tf.SnapshotPlain, text, timeout)
}

func (tf *TUITestFramework) poll(read func() string, text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(read(), text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Snapshot returns the raw output recorded so far
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return string(tf.output)
}

func (tf *TUITestFramework) SnapshotPlain() string {
	return stripANSI(tf.Snapshot())
}

// DumpTailOnFail writes the last n bytes of plain output to a temp file and
// logs where it went
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0o644)
	t.Logf("output tail saved to %s", p)
}

// Cleanup hangs up the terminal and kills the app if it is still running.
// The fake service is stopped too.
func (tf *TUITestFramework) Cleanup() {
	for _, f := range []*os.File{tf.pty, tf.tty} {
		if f != nil {
			_ = f.Close()
		}
	}
	tf.pty, tf.tty = nil, nil

	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
	}
	tf.cmd = nil

	if tf.service != nil {
		tf.service.Close()
		tf.service = nil
	}
	tf.workspace = "" // t.TempDir removes it
}
