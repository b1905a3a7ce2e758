package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Set with -ldflags "-X main.version=... -X main.gitCommit=..."
var (
	version   = ""
	gitCommit = ""
)

func versionString() string {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if v == "" {
		v = "(undefined)"
	}
	s := fmt.Sprintf("droidspec %s %s/%s", v, runtime.GOOS, runtime.GOARCH)
	if gitCommit != "" {
		s += " (" + gitCommit + ")"
	}
	return s
}

// VersionCmd is 'droidspec version'
type VersionCmd struct{}

// Run prints version information
func (c *VersionCmd) Run(out io.Writer) error {
	_, err := fmt.Fprintln(out, versionString())
	return err
}
