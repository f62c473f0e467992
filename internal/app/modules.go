package app

import (
	"github.com/vk/joltage/internal/registry"
	"github.com/vk/joltage/modules/greedy"
	"github.com/vk/joltage/modules/print"
	"github.com/vk/joltage/modules/recursive"
)

// coreModules is the definitive list of all modules that are compiled into
// the joltage binary.
var coreModules = []registry.Module{
	&recursive.Module{},
	&greedy.Module{},
	&print.Module{},
}
