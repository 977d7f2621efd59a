package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// linePrompter reads answers one line at a time. End of input dismisses the
// prompt. Lines have no length limit.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
	err error // first read failure other than end of input
}

func (p *linePrompter) Prompt(text string) (string, bool) {
	fmt.Fprintf(p.out, "%s ", text)
	if p.err != nil {
		fmt.Fprintln(p.out)
		return "", false
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			p.err = err
		}
		if err != io.EOF || line == "" {
			fmt.Fprintln(p.out)
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (p *linePrompter) confirm(text string) bool {
	answer, ok := p.Prompt(text + " [y/N]")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
