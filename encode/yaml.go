package encode

import (
	"fmt"
	"io"

	"github.com/dandelion-json/dandelion/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	var yOpts []yaml.EncodeOption
	yOpts = append(yOpts, yaml.Indent(es.indent))
	if es.wire {
		yOpts = append(yOpts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(ir.ToAny(node), yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
