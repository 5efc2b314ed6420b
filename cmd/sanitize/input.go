package main

import (
	"bufio"
	"io"
	"strings"
)

// eachInput calls fn for every argument, or for every non-empty line of r
// when there are no arguments.
func eachInput(r io.Reader, args []string, fn func(string)) error {
	if len(args) > 0 {
		for _, arg := range args {
			fn(arg)
		}
		return nil
	}
	if r == nil {
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fn(line)
	}
	return sc.Err()
}
