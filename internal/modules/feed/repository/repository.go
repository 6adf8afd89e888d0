package repository

// Repository defines the interface for published feed artifact persistence
type Repository interface {
	Exists() (bool, error)
	Write(xmlText string) error
	// Read reports errors.ErrFeedNotPublished when nothing was published yet.
	Read() (string, error)
}
