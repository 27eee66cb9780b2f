package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/creack/pty"

	"github.com/ces42/hints"
)

// runOverlay runs a command under a PTY, composes its output on a virtual
// screen, prints the marked screen and lets the user pick one mark by its
// hint key. The picked mark's text goes to stdout, so the output can be
// captured by whatever invoked us.
func runOverlay(cmdArgs []string, mark hints.Func, opts *hints.Options) error {
	rows, cols := 50, 120
	if r, c, err := pty.Getsize(os.Stdin); err == nil && r > 0 && c > 0 {
		rows, cols = r, c
	}

	cmd := exec.Command(cmdArgs[0], cmdArgs[1:]...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("starting %s: %w", cmdArgs[0], err)
	}
	defer ptmx.Close()

	screen := hints.NewScreen(cols, rows)
	// The PTY read fails with EIO once the child exits; that's the normal
	// end of output, not an error worth reporting.
	io.Copy(screen, ptmx)
	cmd.Wait()

	text := screen.Text()
	marks := slices.Collect(mark(text, opts))
	if len(marks) == 0 {
		return fmt.Errorf("no marks in the output of %s", cmdArgs[0])
	}

	fmt.Fprintln(os.Stderr, hints.Render(text, marks, opts))
	fmt.Fprint(os.Stderr, "hint key: ")

	key, err := readKey()
	if err != nil {
		return err
	}
	idx := hints.DecodeKey(key, opts.Alphabet)
	for _, m := range marks {
		if m.Index == idx {
			fmt.Println(m.Text)
			return nil
		}
	}
	return fmt.Errorf("no mark for key %q", key)
}

// readKey reads the hint key from the controlling terminal rather than
// stdin, which may be a pipe feeding the marked command's output onward.
func readKey() (string, error) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return "", fmt.Errorf("opening terminal: %w", err)
	}
	defer tty.Close()

	line, err := bufio.NewReader(tty).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	return strings.TrimSpace(line), nil
}
