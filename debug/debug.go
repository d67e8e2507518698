package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Modes     bool
	Transform bool
	Scopes    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("VTX_DEBUG_PARSE")
	d.Modes = boolEnv("VTX_DEBUG_MODES")
	d.Transform = boolEnv("VTX_DEBUG_TRANSFORM")
	d.Scopes = boolEnv("VTX_DEBUG_SCOPES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Modes() bool {
	return d.Modes
}
func Transform() bool {
	return d.Transform
}
func Scopes() bool {
	return d.Scopes
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
