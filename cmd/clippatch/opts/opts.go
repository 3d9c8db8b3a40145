package opts

import (
	"github.com/keremsonmez/clippatch/pkg/config"
	"github.com/keremsonmez/clippatch/pkg/log"
)

// RootOpts contains shared options used by all commands. The fields are
// filled in by the root command once flags are parsed, before any
// subcommand runs.
type RootOpts struct {
	Config *config.Config
	Logger *log.Logger
}
