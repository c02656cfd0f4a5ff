//go:build unit

package controllers_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/osa-releases/internal/domain/entities"
	"github.com/rios0rios0/osa-releases/internal/infrastructure/controllers"
)

func sampleReports() []entities.PinReport {
	return []entities.PinReport{
		{Name: "pip", CurrentSpec: "== 18.0", LatestVersion: "18.1", ConstrainedTo: "=== 18.1"},
		{Name: "wheel", CurrentSpec: "== 0.31.1", LatestVersion: "0.32.3", ConstrainedTo: entities.NoConstraint},
	}
}

func TestRenderPinsTable(t *testing.T) {
	t.Parallel()

	t.Run("should render identical tables for identical input", func(t *testing.T) {
		t.Parallel()

		// when
		first := controllers.RenderPinsTable(sampleReports())
		second := controllers.RenderPinsTable(sampleReports())

		// then
		assert.Equal(t, first, second)
	})

	t.Run("should render headers then one row per report in order", func(t *testing.T) {
		t.Parallel()

		// when
		rendered := controllers.RenderPinsTable(sampleReports())

		// then
		assert.Contains(t, rendered, "Package")
		assert.Contains(t, rendered, "Current Version Spec")
		assert.Contains(t, rendered, "Latest version on PyPI")
		assert.Contains(t, rendered, "Constrained to")
		assert.Contains(t, rendered, "+")
		assert.Less(t, strings.Index(rendered, "Package"), strings.Index(rendered, "pip"))
		assert.Less(t, strings.Index(rendered, "pip"), strings.Index(rendered, "wheel"))
		assert.Contains(t, rendered, entities.NoConstraint)
	})

	t.Run("should write the table followed by a newline", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer

		// when
		err := controllers.WritePinsTable(&out, sampleReports())

		// then
		require.NoError(t, err)
		assert.Equal(t, controllers.RenderPinsTable(sampleReports())+"\n", out.String())
	})

	t.Run("should frame the table with ASCII characters only", func(t *testing.T) {
		t.Parallel()

		// when
		rendered := controllers.RenderPinsTable(sampleReports())

		// then
		lines := strings.Split(rendered, "\n")
		assert.True(t, strings.HasPrefix(lines[0], "+-"), lines[0])
		assert.True(t, strings.HasSuffix(lines[0], "-+"), lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "|"), lines[1])
		for _, r := range rendered {
			assert.Less(t, r, rune(128), "non-ASCII rune %q", r)
		}
	})
}
