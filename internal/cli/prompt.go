package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errPromptUnavailable = errors.New("password prompt needs an interactive terminal")

// promptPassword writes label to out and reads one line from stdin with
// terminal echo switched off.
func promptPassword(stdin *os.File, out io.Writer, label string) (string, error) {
	if stdin == nil {
		return "", errPromptUnavailable
	}

	fmt.Fprint(out, label)
	restore, err := disableEcho(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errPromptUnavailable, err)
	}
	line, readErr := readLine(stdin)
	restore()
	fmt.Fprintln(out)

	return line, readErr
}

func readLine(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
