//+build wireinject

package container

import (
	"github.com/google/wire"
)

func InitializeContainer() *Container {
	wire.Build(WireSet)

	return &Container{}
}
