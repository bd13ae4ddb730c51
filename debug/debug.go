package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Index bool
	Patch bool
	Eval  bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DJ_DEBUG_PARSE")
	d.Index = boolEnv("DJ_DEBUG_INDEX")
	d.Patch = boolEnv("DJ_DEBUG_PATCH")
	d.Eval = boolEnv("DJ_DEBUG_EVAL")
	d.LSP = boolEnv("DJ_DEBUG_LSP")
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
func Index() bool {
	return d.Index
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}

// LogAny writes v to Out as a line of JSON, or with %v if it does not
// marshal.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(Out, "%v\n", v)
		return
	}
	Out.Write(append(d, '\n'))
}
