package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/copygitlink/internal/domain/commands"
	"github.com/rios0rios0/copygitlink/internal/domain/entities"
)

// DiscoverController handles the "discover" subcommand.
type DiscoverController struct {
	command commands.Discover
}

// NewDiscoverController creates a new DiscoverController.
func NewDiscoverController(command commands.Discover) *DiscoverController {
	return &DiscoverController{command: command}
}

// GetBind returns the Cobra command metadata for the discover controller.
func (it *DiscoverController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "discover <path>...",
		Short: "Show the repository each path belongs to",
		Long: `Discover the Git repository enclosing every given file or directory and
report the hosting provider recognized from its remote.

Repositories without a usable remote are reported as local-only.`,
	}
}

// Execute discovers every argument and prints one line per path.
func (it *DiscoverController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	results, err := it.command.Execute(commandContext(cmd), settings, commands.DiscoverOptions{Paths: args})
	if err != nil {
		return fmt.Errorf("discover failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, result := range results {
		if err = printResult(out, result); err != nil {
			return err
		}
	}
	return nil
}

// GetArgs returns the positional argument validator.
func (it *DiscoverController) GetArgs() cobra.PositionalArgs {
	return cobra.MinimumNArgs(1)
}

// AddFlags adds the discover-specific flags to the given Cobra command.
func (it *DiscoverController) AddFlags(_ *cobra.Command) {}

func printResult(out io.Writer, result commands.DiscoveryResult) error {
	var err error
	switch result.Status {
	case commands.StatusRemote:
		_, err = fmt.Fprintf(out, "%s → %s %s %s\n",
			result.Path, result.Folder, result.Identity.ProviderName(), describeIdentity(result.Identity))
	case commands.StatusLocal:
		_, err = fmt.Fprintf(out, "%s → local-only\n", result.Path)
	default:
		_, err = fmt.Fprintf(out, "%s → not in a known remote repository\n", result.Path)
	}
	return err
}

// describeIdentity renders "org/repo", or "org/project/repo" for Azure DevOps.
func describeIdentity(identity entities.RepositoryIdentity) string {
	parts := make([]string, 0, 3)
	for _, key := range []string{
		entities.PropertyOrganization,
		entities.PropertyProject,
		entities.PropertyRepository,
	} {
		if value, ok := identity.Property(key); ok && value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, "/")
}
