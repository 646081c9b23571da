package catalog

import "fmt"

// SelectionNotFoundError means a requested region name is not in the table.
// The shipped viewer only submits names taken from the table, so seeing this
// from it indicates a defect rather than bad user input.
type SelectionNotFoundError struct {
	Name string
}

func (err *SelectionNotFoundError) Error() string {
	return fmt.Sprintf("region '%s' is not in the table", err.Name)
}
