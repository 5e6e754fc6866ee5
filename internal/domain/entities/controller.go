package entities

import (
	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
	"github.com/spf13/cobra"
)

// ControllerBind is re-exported from gitforge.
type ControllerBind = gitforgeEntities.ControllerBind

// Controller is a gitforge controller that also declares its positional
// arguments and its own flags.
type Controller interface {
	gitforgeEntities.Controller
	GetArgs() cobra.PositionalArgs
	AddFlags(command *cobra.Command)
}
