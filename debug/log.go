package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/ir"
)

// Out is where Logf writes.
var Out io.Writer = os.Stderr

type Node struct{ *ir.Node }

func (y Node) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

// Logf formats like fmt.Fprintf to Out, rendering *ir.Node arguments as
// compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = Node{x}.String()
		}
	}
	fmt.Fprintf(Out, msg, args...)
}
