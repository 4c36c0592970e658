package tui

import (
	"testing"

	"github.com/stefanpenner/pagedo/pkg/store"
	"github.com/stretchr/testify/assert"
)

func testPage() *store.Page {
	return &store.Page{
		Title: "Home",
		Groups: []store.Group{
			{Title: "Kitchen", ShowItems: true, Items: []store.Item{{ID: 1, Title: "dishes"}, {ID: 2, Title: "oven"}}},
			{Title: "Garden", ShowItems: false, Items: []store.Item{{ID: 3, Title: "weeds"}}},
			{Title: "Garage", ShowItems: true},
		},
	}
}

func TestFlatten(t *testing.T) {
	rows := Flatten(testPage())

	assert.Equal(t, []Row{
		{Kind: RowGroup, Group: 0},
		{Kind: RowItem, Group: 0, Item: 0, Depth: 1},
		{Kind: RowItem, Group: 0, Item: 1, Depth: 1},
		{Kind: RowGroup, Group: 1},
		{Kind: RowGroup, Group: 2},
	}, rows)
}

func TestFlattenNilPage(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten(&store.Page{Title: "empty"}))
}

func TestRowTitle(t *testing.T) {
	page := testPage()

	assert.Equal(t, "Kitchen", rowTitle(page, Row{Kind: RowGroup, Group: 0}))
	assert.Equal(t, "oven", rowTitle(page, Row{Kind: RowItem, Group: 0, Item: 1}))
	assert.Equal(t, "", rowTitle(page, Row{Kind: RowItem, Group: 2, Item: 0}))
	assert.Equal(t, "", rowTitle(page, Row{Kind: RowGroup, Group: 9}))
	assert.Equal(t, "", rowTitle(nil, Row{}))
}
