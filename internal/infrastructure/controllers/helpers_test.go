//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	"github.com/rios0rios0/copygitlink/internal/infrastructure/controllers"
)

// newCommand builds a cobra command the way main does for a controller,
// parses flags and returns the positional arguments left over.
func newCommand(
	t *testing.T,
	controller entities.Controller,
	flags ...string,
) (*cobra.Command, *bytes.Buffer, []string) {
	t.Helper()

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().StringP(controllers.ConfigFlag, "c", "", "")
	controller.AddFlags(cmd)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd, out, cmd.Flags().Args()
}

// writeConfig writes a YAML settings file and returns the flag pointing to it.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "copygitlink.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return "--config=" + path
}

// errorEntries returns the entries hook captured at error level or above.
func errorEntries(hook *logtest.Hook) []logger.Entry {
	var entries []logger.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level <= logger.ErrorLevel {
			entries = append(entries, *entry)
		}
	}
	return entries
}
