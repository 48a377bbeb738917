package domain

// TestCase represents a single golden-file case resolved from its name
type TestCase struct {
	Name         string // Case name (input file base name without extension)
	InputPath    string // Source file handed to the subject program
	ExpectedPath string // Recorded snapshot file
}
