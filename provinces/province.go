// Package provinces loads the static region content dataset: one record per
// province, carrying the display name and the cultural text shown in the
// detail panel.
package provinces

// Province is a single content record. Records are read-only after load.
type Province struct {
	Name    string `json:"name"`
	Culture string `json:"culture"`
}
