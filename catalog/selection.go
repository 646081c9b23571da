package catalog

// SelectionSource tags how a selection came to be, so precedence is explicit
// instead of inferred from which values happen to be non-empty downstream.
type SelectionSource string

const (
	SelectionSourceClick   SelectionSource = "click"
	SelectionSourceList    SelectionSource = "list"
	SelectionSourceDefault SelectionSource = "default"
)

// Selection is a resolved region choice.
type Selection struct {
	Source SelectionSource `json:"source"`
	Name   string          `json:"name"`
}

// ResolveSelection picks between a map click and a list choice: a non-empty
// click wins, then a non-empty list choice, then the default. The empty
// string always means "no input here", never a region name.
func ResolveSelection(click, list, defaultName string) Selection {
	if click != "" {
		return Selection{Source: SelectionSourceClick, Name: click}
	}
	if list != "" {
		return Selection{Source: SelectionSourceList, Name: list}
	}
	return Selection{Source: SelectionSourceDefault, Name: defaultName}
}
