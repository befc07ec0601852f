// Package cli turns lines of user input into address book operations.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned by ParseInput for a blank line.
var ErrEmptyInput = errors.New("empty input")

// ArgsError reports a command invoked with too few arguments.
type ArgsError struct {
	Usage string
}

func (e *ArgsError) Error() string {
	return fmt.Sprintf("not enough arguments, usage: %s", e.Usage)
}

// ParseInput splits a line on whitespace. The command is lower-cased;
// arguments keep their case because names are matched exactly.
func ParseInput(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, ErrEmptyInput
	}
	return strings.ToLower(fields[0]), fields[1:], nil
}

// requireArgs returns an ArgsError when fewer than n arguments were given.
func requireArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return &ArgsError{Usage: usage}
	}
	return nil
}
