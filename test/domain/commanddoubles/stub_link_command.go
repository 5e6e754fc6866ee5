//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/copygitlink/internal/domain/commands"
	"github.com/rios0rios0/copygitlink/internal/domain/entities"
)

// StubLinkCommand is a stub implementation of commands.Link.
type StubLinkCommand struct {
	URL              string
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.LinkOptions
}

var _ commands.Link = (*StubLinkCommand)(nil)

func (s *StubLinkCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.LinkOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return "", s.ExecuteErr
	}
	return s.URL, nil
}
