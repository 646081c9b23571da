package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSelection(t *testing.T) {
	tests := []struct {
		name       string
		click      string
		list       string
		wantSource SelectionSource
		wantName   string
	}{
		{name: "both empty falls back to default", wantSource: SelectionSourceDefault, wantName: "Adana"},
		{name: "list only", list: "Bolu", wantSource: SelectionSourceList, wantName: "Bolu"},
		{name: "click only", click: "Van", wantSource: SelectionSourceClick, wantName: "Van"},
		{name: "click beats list", click: "Van", list: "Bolu", wantSource: SelectionSourceClick, wantName: "Van"},
		{name: "empty click defers to list", click: "", list: "Bolu", wantSource: SelectionSourceList, wantName: "Bolu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := ResolveSelection(tt.click, tt.list, "Adana")
			assert.Equal(t, tt.wantSource, selection.Source)
			assert.Equal(t, tt.wantName, selection.Name)
		})
	}
}
