package boundaries

import "fmt"

// UserFacingFetchErrorTR is shown when no mirror could deliver the boundary
// dataset. Product copy, kept in Turkish.
const UserFacingFetchErrorTR = "İl sınırlarını içeren GeoJSON dosyası indirilemedi. " +
	"Lütfen ağ bağlantınızı kontrol edip tekrar deneyin."

// FetchError reports that every mirror failed while no usable cache existed.
// It wraps the last mirror's underlying error.
type FetchError struct {
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("boundary geojson download failed after %d mirror attempt(s): %v", e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
