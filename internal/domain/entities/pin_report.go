package entities

// NoConstraint is displayed when a pinned package is absent from the constraints file.
const NoConstraint = "None"

// PinReport is one row of the pins comparison table.
type PinReport struct {
	Name          string
	CurrentSpec   string
	LatestVersion string
	ConstrainedTo string
}
