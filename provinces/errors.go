package provinces

import "fmt"

// DataLoadError reports a missing or malformed province dataset. The session
// cannot start without the content records, so callers treat this as fatal
// rather than rendering a partial map.
type DataLoadError struct {
	Filename string
	Err      error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("province data '%s' could not be loaded: %v", e.Filename, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
