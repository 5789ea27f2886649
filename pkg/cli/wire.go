//+build wireinject

package cli

import (
	"github.com/google/wire"
	"github.com/mnikita/task-dispatch/pkg/container"
)

func InitializeCli(config *Configuration) *Cli {
	wire.Build(NewCli, container.WireSet)

	return &Cli{}
}
