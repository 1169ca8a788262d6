package interfaces

// Repository defines the interface for data access backends
type Repository interface {
	Record() RecordRepository

	// Close releases backend resources
	Close() error
}
