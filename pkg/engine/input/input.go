// Package input reads player commands and answers from the console.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tangrin/pkg/engine/logger"
	"tangrin/pkg/engine/terminal"
)

// Reader is the blocking source of player input.
type Reader interface {
	// ReadCommand reads one line and maps it to the command vocabulary.
	ReadCommand() Action

	// YesNo reads a single answer and reports whether it was yes.
	YesNo() bool

	// WaitForEnter blocks until the player presses Enter.
	WaitForEnter()

	// WaitForKey blocks until the player presses any key.
	WaitForKey()

	// ChooseListItem reads a number; anything that is not a number yields 0.
	ChooseListItem() int
}

// Console reads from a terminal in raw mode, or line by line from any other reader.
type Console struct {
	file   *os.File // set only when attached to a terminal
	reader *bufio.Reader
	out    io.Writer

	// OnClose runs when input ends or the player presses Ctrl+C.
	OnClose func()
}

// NewConsole creates a reader over in, echoing to out. Raw key reads are used
// when in is a terminal.
func NewConsole(in *os.File, out io.Writer) *Console {
	c := NewHeadless(in, out)
	if terminal.IsInteractive(in) {
		c.file = in
	}
	c.OnClose = func() {
		logger.Info("input closed, exiting")
		os.Exit(0)
	}
	return c
}

// NewHeadless creates a line based reader over r
func NewHeadless(r io.Reader, out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{
		reader: bufio.NewReader(r),
		out:    out,
	}
}

func (c *Console) closed() {
	if c.OnClose != nil {
		c.OnClose()
	}
}

func (c *Console) ReadCommand() Action {
	return ParseAction(c.ReadLine())
}

func (c *Console) ReadLine() string {
	if c.file != nil {
		if line, ok := c.readRawLine(); ok {
			return line
		}
	}
	return c.readBufferedLine()
}

func (c *Console) YesNo() bool {
	var answer string
	if key, ok := c.readRawKey(); ok {
		answer = string(key)
		fmt.Fprintln(c.out, answer)
	} else {
		answer = c.readBufferedLine()
	}
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y')
}

func (c *Console) WaitForEnter() {
	c.ReadLine()
}

func (c *Console) WaitForKey() {
	if _, ok := c.readRawKey(); ok {
		fmt.Fprintln(c.out)
		return
	}
	c.readBufferedLine()
}

func (c *Console) ChooseListItem() int {
	n, err := strconv.Atoi(strings.TrimSpace(c.ReadLine()))
	if err != nil {
		return 0
	}
	return n
}

// readBufferedLine reads a line without its terminator
func (c *Console) readBufferedLine() string {
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		if err != io.EOF {
			logger.Errorf("Cannot read stdin: %v", err)
		}
		c.closed()
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// readByte reads a single byte from the terminal in raw mode
func (c *Console) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := c.file.Read(buf)
	return buf[0], err
}

// readRawKey reads one key press without waiting for Enter.
func (c *Console) readRawKey() (byte, bool) {
	if c.file == nil {
		return 0, false
	}
	restore, err := terminal.MakeRaw(c.file)
	if err != nil {
		logger.Debugf("raw mode unavailable: %v", err)
		return 0, false
	}
	b, err := c.readByte()
	restore()
	if err != nil {
		c.closed()
		return 0, false
	}
	if b == 3 {
		fmt.Fprintln(c.out)
		c.closed()
	}
	return b, true
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func (c *Console) tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := c.readByte()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return ""
	}

	b3, err := c.readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// readRawLine reads a line in raw mode. An arrow key pressed on an empty line
// returns its movement command immediately.
func (c *Console) readRawLine() (string, bool) {
	restore, err := terminal.MakeRaw(c.file)
	if err != nil {
		logger.Debugf("raw mode unavailable: %v", err)
		return "", false
	}

	var line []byte
	for {
		b, err := c.readByte()
		if err != nil {
			restore()
			c.closed()
			return string(line), true
		}

		switch {
		case b == 0x1b:
			arrow := c.tryReadArrowKey(b)
			if arrow != "" && len(line) == 0 {
				restore()
				cmd := arrowCommands[arrow]
				fmt.Fprintln(c.out, cmd)
				return cmd, true
			}
		case b == 3:
			restore()
			fmt.Fprintln(c.out)
			c.closed()
			return "", true
		case b == '\n' || b == '\r':
			restore()
			fmt.Fprintln(c.out)
			return string(line), true
		case b == 127 || b == 8:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(c.out, "\b \b")
			}
		case b >= 32 && b < 127:
			line = append(line, b)
			fmt.Fprint(c.out, string(b))
		}
	}
}
