package entities

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

// Constraint is a single (comparator, version) pair of a requirement.
type Constraint struct {
	Comparator string
	Version    string
}

// String renders the constraint as "== 18.0".
func (c Constraint) String() string {
	return c.Comparator + " " + c.Version
}

// Pin is a dependency version constraint entry of a requirements file.
type Pin struct {
	Name   string
	Specs  []Constraint
	Extras []string
}

// SpecString joins the pin constraints, e.g. "== 18.0" or ">= 1.0, < 2.0".
func (p Pin) SpecString() string {
	parts := make([]string, 0, len(p.Specs))
	for _, spec := range p.Specs {
		parts = append(parts, spec.String())
	}
	return strings.Join(parts, ", ")
}

var (
	requirementPattern = regexp.MustCompile(
		`^([A-Za-z0-9][A-Za-z0-9._-]*)\s*(?:\[([^\]]*)\])?\s*(.*)$`,
	)
	constraintPattern  = regexp.MustCompile(`^(===|==|!=|~=|<=|>=|<|>)\s*([^\s,]+)$`)
	normalizedNameRuns = regexp.MustCompile(`[-_.]+`)
)

// ParseRequirements parses pip requirements syntax into pins, keeping file order.
// Option lines (-r, -c, --index-url ...) and URL/VCS requirements are skipped.
func ParseRequirements(content string) ([]Pin, error) {
	var pins []Pin

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := stripComment(scanner.Text())
		if line == "" || strings.HasPrefix(line, "-") || strings.Contains(line, "://") {
			continue
		}

		pin, err := parseRequirementLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		pins = append(pins, pin)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read requirements: %w", err)
	}

	return pins, nil
}

// NormalizeName returns the PEP 503 canonical form of a package name.
func NormalizeName(name string) string {
	return strings.ToLower(normalizedNameRuns.ReplaceAllString(name, "-"))
}

// IndexPins maps pins by name; later entries win, as in a dict comprehension.
func IndexPins(pins []Pin) map[string]Pin {
	result := make(map[string]Pin, len(pins))
	for _, pin := range pins {
		result[pin.Name] = pin
	}
	return result
}

// LookupPin finds a pin by exact name, falling back to the normalized name.
func LookupPin(index map[string]Pin, name string) (Pin, bool) {
	if pin, ok := index[name]; ok {
		return pin, true
	}
	normalized := NormalizeName(name)
	for key, pin := range index {
		if NormalizeName(key) == normalized {
			return pin, true
		}
	}
	return Pin{}, false
}

func stripComment(line string) string {
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

func parseRequirementLine(line string) (Pin, error) {
	// environment markers are irrelevant for version reporting
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}

	match := requirementPattern.FindStringSubmatch(line)
	if match == nil {
		return Pin{}, fmt.Errorf("invalid requirement %q", line)
	}

	pin := Pin{
		Name:   match[1],
		Specs:  []Constraint{},
		Extras: []string{},
	}

	if extras := strings.TrimSpace(match[2]); extras != "" {
		for _, extra := range strings.Split(extras, ",") {
			if extra = strings.TrimSpace(extra); extra != "" {
				pin.Extras = append(pin.Extras, extra)
			}
		}
	}

	rest := strings.TrimSpace(match[3])
	if rest == "" {
		return pin, nil
	}
	for _, raw := range strings.Split(rest, ",") {
		raw = strings.TrimSpace(raw)
		specMatch := constraintPattern.FindStringSubmatch(raw)
		if specMatch == nil {
			return Pin{}, fmt.Errorf("invalid version constraint %q in %q", raw, line)
		}
		pin.Specs = append(pin.Specs, Constraint{Comparator: specMatch[1], Version: specMatch[2]})
	}

	return pin, nil
}
