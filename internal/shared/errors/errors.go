package errors

import "errors"

var (
	ErrMissingListingURL = errors.New("listing_url is required")
	ErrMissingOutputPath = errors.New("output_path is required")
	ErrFeedNotPublished  = errors.New("no feed has been published yet")
)
