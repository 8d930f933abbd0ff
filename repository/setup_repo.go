package repository

// SetupRepository seeds the reference tables. Safe to call repeatedly;
// existing rows are left alone.
type SetupRepository interface {
	SeedReferenceData() error
}
