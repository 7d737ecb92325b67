package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is the line-oriented interaction channel: one line read per
// prompt, arbitrary lines written. The transport behind the reader and
// writer is the caller's business.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next input line without its trailing newline. The
// error is io.EOF once input is exhausted.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

// ReadInt64 prompts for and parses one integer input.
func (c *Console) ReadInt64(prompt string) (int64, error) {
	c.Println(prompt)
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", line)
	}
	return value, nil
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
