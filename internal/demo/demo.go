// Package demo implements the entry routine shared by the demo binaries:
// build one record and print the program name and argument count.
package demo

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/and161185/argv-demo/internal/aligned"
	"github.com/and161185/argv-demo/model"
)

// Variant selects which demo program runs.
type Variant int

const (
	Plain   Variant = iota // record and print
	Aligned                // record, aligned buffer and print
)

func (v Variant) String() string {
	switch v {
	case Plain:
		return "plain"
	case Aligned:
		return "aligned"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

const (
	BufferSize  = 64
	BufferAlign = 64
)

// Options configures Run. A nil Logger discards logs.
type Options struct {
	Variant Variant
	Logger  *zap.SugaredLogger
}

// Run writes "<args[0]>: <len(args)>\n" to w. No argument is interpreted.
func Run(args []string, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	var truthy bool
	switch opts.Variant {
	case Plain:
		truthy = model.NewRecord(0, 32, "abc").Truthy()
	case Aligned:
		buf, err := aligned.New(BufferSize, BufferAlign)
		if err != nil {
			return fmt.Errorf("acquire buffer: %w", err)
		}
		defer buf.Close()
		logger.Debugw("aligned buffer acquired",
			"addr", fmt.Sprintf("%#x", buf.Addr()),
			"size", buf.Len(),
			"align", buf.Align(),
		)
		truthy = model.NewIntegralRecord(0, 32, "abc").Truthy()
	default:
		return fmt.Errorf("unknown variant %v", opts.Variant)
	}
	logger.Debugw("record constructed", "variant", opts.Variant.String(), "truthy", truthy)

	if _, err := fmt.Fprint(w, Line(args)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Line formats the single output line for args, newline included.
func Line(args []string) string {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	return fmt.Sprintf("%s: %d\n", name, len(args))
}
