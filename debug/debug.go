package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Graph  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("XOVER_DEBUG_TOKENS")
	d.Graph = boolEnv("XOVER_DEBUG_GRAPH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Graph() bool {
	return d.Graph
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
