package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/domain/repositories"
)

// CheckPins is the interface for the check_pins command.
type CheckPins interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckPinsOptions) ([]entities.PinReport, error)
}

// CheckPinsOptions holds runtime options for a pins check.
type CheckPinsOptions struct {
	PinsFile        string // overrides settings.Requirements.PinsFile
	RequirementsSHA string // if empty, discovered from the SHA manifest
}

// CheckPinsCommand compares a pins file against the package index and the
// upstream constraints file.
type CheckPinsCommand struct {
	packageIndex repositories.PackageIndexRepository
	constraints  repositories.ConstraintsRepository
	manifests    repositories.UpstreamManifestRepository
}

// NewCheckPinsCommand creates a new CheckPinsCommand.
func NewCheckPinsCommand(
	packageIndex repositories.PackageIndexRepository,
	constraints repositories.ConstraintsRepository,
	manifests repositories.UpstreamManifestRepository,
) *CheckPinsCommand {
	return &CheckPinsCommand{
		packageIndex: packageIndex,
		constraints:  constraints,
		manifests:    manifests,
	}
}

// Execute builds one report row per pinned package, in pins-file order.
func (it *CheckPinsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckPinsOptions,
) ([]entities.PinReport, error) {
	pinsFile := opts.PinsFile
	if pinsFile == "" {
		pinsFile = settings.Requirements.PinsFile
	}

	content, err := os.ReadFile(pinsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read pins file %q: %w", pinsFile, err)
	}

	pins, err := entities.ParseRequirements(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pins file %q: %w", pinsFile, err)
	}
	pins = dedupePins(pins)
	logger.Debugf("Parsed pins: %+v", pins)

	latestVersions := make(map[string]string, len(pins))
	for _, pin := range pins {
		requestCtx, cancel := withRequestTimeout(ctx, settings)
		version, lookupErr := it.packageIndex.LatestVersion(requestCtx, settings.Requirements.PackageIndexURL, pin.Name)
		cancel()
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to fetch latest version of %q: %w", pin.Name, lookupErr)
		}
		latestVersions[pin.Name] = version
	}

	sha := opts.RequirementsSHA
	if sha == "" {
		sha, err = it.manifests.ReadValue(settings.Requirements.ShaManifest, settings.Requirements.ShaKey)
		if err != nil {
			return nil, fmt.Errorf("failed to discover requirements SHA: %w", err)
		}
		logger.Infof("Discovered requirements SHA %s in %s", sha, settings.Requirements.ShaManifest)
	}

	requestCtx, cancel := withRequestTimeout(ctx, settings)
	defer cancel()
	rawConstraints, err := it.constraints.Fetch(requestCtx, settings.Requirements.ConstraintsURL, sha)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upper constraints at %s: %w", sha, err)
	}
	constraints, err := entities.ParseRequirements(rawConstraints)
	if err != nil {
		return nil, fmt.Errorf("failed to parse upper constraints at %s: %w", sha, err)
	}
	constraintIndex := entities.IndexPins(constraints)

	reports := make([]entities.PinReport, 0, len(pins))
	for _, pin := range pins {
		constrainedTo := entities.NoConstraint
		if constraint, ok := entities.LookupPin(constraintIndex, pin.Name); ok {
			constrainedTo = constraint.SpecString()
		}
		reports = append(reports, entities.PinReport{
			Name:          pin.Name,
			CurrentSpec:   pin.SpecString(),
			LatestVersion: latestVersions[pin.Name],
			ConstrainedTo: constrainedTo,
		})
	}

	return reports, nil
}

// dedupePins keeps the first position of each name and the last definition.
func dedupePins(pins []entities.Pin) []entities.Pin {
	index := entities.IndexPins(pins)
	seen := make(map[string]bool, len(index))
	result := make([]entities.Pin, 0, len(index))
	for _, pin := range pins {
		if seen[pin.Name] {
			continue
		}
		seen[pin.Name] = true
		result = append(result, index[pin.Name])
	}
	return result
}

// withRequestTimeout bounds a single network call by the configured HTTP timeout.
func withRequestTimeout(ctx context.Context, settings *entities.Settings) (context.Context, context.CancelFunc) {
	if timeout := settings.HTTP.Timeout(); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
