//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/osa-releases/internal/domain/commands"
	"github.com/rios0rios0/osa-releases/internal/domain/entities"
)

// StubCheckPinsCommand is a stub implementation of commands.CheckPins.
type StubCheckPinsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Reports          []entities.PinReport
	LastSettings     *entities.Settings
	LastOpts         commands.CheckPinsOptions
}

var _ commands.CheckPins = (*StubCheckPinsCommand)(nil)

func (s *StubCheckPinsCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.CheckPinsOptions,
) ([]entities.PinReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Reports, s.ExecuteErr
}

// StubBumpUpstreamShasCommand is a stub implementation of commands.BumpUpstreamShas.
type StubBumpUpstreamShasCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.BumpUpstreamShasOptions
}

var _ commands.BumpUpstreamShas = (*StubBumpUpstreamShasCommand)(nil)

func (s *StubBumpUpstreamShasCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.BumpUpstreamShasOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubBumpRolesCommand is a stub implementation of commands.BumpRoles.
type StubBumpRolesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.BumpRolesOptions
}

var _ commands.BumpRoles = (*StubBumpRolesCommand)(nil)

func (s *StubBumpRolesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.BumpRolesOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubBumpReleaseNumberCommand is a stub implementation of commands.BumpReleaseNumber.
type StubBumpReleaseNumberCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *entities.VersionFile
	LastSettings     *entities.Settings
	LastOpts         commands.BumpReleaseNumberOptions
}

var _ commands.BumpReleaseNumber = (*StubBumpReleaseNumberCommand)(nil)

func (s *StubBumpReleaseNumberCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.BumpReleaseNumberOptions,
) (*entities.VersionFile, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
