// Command demo prints its invocation name and argument count.
package main

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/and161185/argv-demo/internal/buildinfo"
	"github.com/and161185/argv-demo/internal/config"
	"github.com/and161185/argv-demo/internal/demo"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg := config.NewConfig()
	defer func() { _ = cfg.Logger.Sync() }()

	buildinfo.New(buildVersion, buildDate, buildCommit).Log(cfg.Logger)

	run(os.Args, os.Stdout, cfg.Logger)
}

// run never fails the process: a write error is logged and the exit status stays 0.
func run(args []string, w io.Writer, logger *zap.SugaredLogger) {
	if err := demo.Run(args, w, demo.Options{Variant: demo.Plain, Logger: logger}); err != nil {
		logger.Errorw("demo run failed", "error", err)
	}
}
