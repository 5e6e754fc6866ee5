package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/copygitlink/internal/domain/commands"
	"github.com/rios0rios0/copygitlink/internal/domain/entities"
)

const (
	lineFlag      = "line"
	columnFlag    = "column"
	endLineFlag   = "end-line"
	endColumnFlag = "end-column"
	copyFlag      = "copy"
)

// LinkController handles the "link" subcommand.
type LinkController struct {
	command commands.Link
}

// NewLinkController creates a new LinkController.
func NewLinkController(command commands.Link) *LinkController {
	return &LinkController{command: command}
}

// GetBind returns the Cobra command metadata for the link controller.
func (it *LinkController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "link <file>",
		Short: "Print a web link to a file in its hosted repository",
		Long: `Find the Git repository containing the file, identify its hosting provider
from the remote URL, and print a link to the file on the web.

Lines and columns are 1-based. When the end comes before the start the
selection is swapped. GitHub and GitLab links use the remote branch by
default; list the "generic-commit" provider to link to the current commit.`,
	}
}

// Execute prints the link for the file given as argument.
func (it *LinkController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	lines, err := lineRangeFromFlags(cmd)
	if err != nil {
		return err
	}

	copyLink, _ := cmd.Flags().GetBool(copyFlag)

	url, err := it.command.Execute(commandContext(cmd), settings, commands.LinkOptions{
		FilePath: args[0],
		Lines:    lines,
		Copy:     copyLink,
	})
	if err != nil {
		return fmt.Errorf("link failed: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
	return err
}

// GetArgs returns the positional argument validator.
func (it *LinkController) GetArgs() cobra.PositionalArgs {
	return cobra.ExactArgs(1)
}

// AddFlags adds the link-specific flags to the given Cobra command.
func (it *LinkController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Int(lineFlag, 0, "First selected line (1-based)")
	cmd.Flags().Int(columnFlag, 0, "First selected column (1-based, Azure DevOps only)")
	cmd.Flags().Int(endLineFlag, 0, "Last selected line (1-based)")
	cmd.Flags().Int(endColumnFlag, 0, "Last selected column (1-based, Azure DevOps only)")
	cmd.Flags().Bool(copyFlag, false, "Also copy the link to the clipboard")
}

// lineRangeFromFlags converts the 1-based flags into a 0-based range.
// Flags that were not given stay unset.
func lineRangeFromFlags(cmd *cobra.Command) (entities.LineRange, error) {
	var lines entities.LineRange
	bounds := []struct {
		name   string
		target **int
	}{
		{lineFlag, &lines.StartLine},
		{columnFlag, &lines.StartColumn},
		{endLineFlag, &lines.EndLine},
		{endColumnFlag, &lines.EndColumn},
	}

	for _, bound := range bounds {
		if !cmd.Flags().Changed(bound.name) {
			continue
		}
		value, err := cmd.Flags().GetInt(bound.name)
		if err != nil {
			return entities.LineRange{}, err
		}
		if value < 1 {
			return entities.LineRange{}, fmt.Errorf("--%s must be 1 or greater, got %d", bound.name, value)
		}
		zeroBased := value - 1
		*bound.target = &zeroBased
	}

	return lines, nil
}
