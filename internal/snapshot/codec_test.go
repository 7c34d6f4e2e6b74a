package snapshot

import (
	"testing"

	"github.com/FynnK/FestivalInventory/internal/ledger"
	"github.com/FynnK/FestivalInventory/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildState(t *testing.T) (*ledger.Ledger, *ledger.StageRegistry) {
	t.Helper()
	l := ledger.New()
	stages := ledger.NewStageRegistry()
	require.NoError(t, stages.Add("Main"))
	require.NoError(t, stages.Add("Side"))

	_, err := l.CreateItem("111", "Tape", 10, 50, "meters per roll", "black")
	require.NoError(t, err)
	require.NoError(t, l.ApplyUsage("111", "Main", 3))

	_, err = l.CreateItem("222", "Cable", 4, 1, "cable", "")
	require.NoError(t, err)
	return l, stages
}

func TestRoundTrip(t *testing.T) {
	l, stages := buildState(t)

	data, err := Serialize(l, stages)
	require.NoError(t, err)

	doc, err := Deserialize(data)
	require.NoError(t, err)

	l2 := ledger.New()
	stages2 := ledger.NewStageRegistry()
	Restore(doc, l2, stages2)

	assert.Equal(t, l.List(), l2.List())
	assert.Equal(t, stages.List(), stages2.List())
}

func TestDeserialize_Malformed(t *testing.T) {
	_, err := Deserialize([]byte("this is not json"))
	assert.ErrorIs(t, err, ledger.ErrMalformedDocument)

	_, err = Deserialize([]byte(`{"inventory": "wrong shape"}`))
	assert.ErrorIs(t, err, ledger.ErrMalformedDocument)
}

func TestDeserialize_MissingFieldsDefaultToEmpty(t *testing.T) {
	doc, err := Deserialize([]byte(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, doc.Inventory)
	assert.Empty(t, doc.Inventory)
	assert.NotNil(t, doc.Stages)
	assert.Empty(t, doc.Stages)

	doc, err = Deserialize([]byte(`{"inventory": [{"id": "1", "name": "x", "total": 1, "remaining": 1}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Inventory, 1)
	assert.NotNil(t, doc.Inventory[0].Usage)
}

func TestRestore_FullOverwrite(t *testing.T) {
	l, stages := buildState(t)

	Restore(model.Snapshot{
		Inventory: []model.Item{{ID: "999", Name: "Fresh", Total: 1, Remaining: 1, Usage: model.Usage{}}},
		Stages:    []string{"Solo"},
	}, l, stages)

	assert.Equal(t, 1, l.Len())
	_, ok := l.Get("111")
	assert.False(t, ok)
	assert.Equal(t, []string{"Solo"}, stages.List())
}

func TestReport_Projection(t *testing.T) {
	l := ledger.New()
	stages := ledger.NewStageRegistry()
	require.NoError(t, stages.Add("Main"))
	require.NoError(t, stages.Add("Side"))

	_, err := l.CreateItem("111", "Tape", 10, 50, "meters per roll", "black")
	require.NoError(t, err)
	require.NoError(t, l.ApplyUsage("111", "Main", 3))

	grid := Report(l, stages)
	require.Len(t, grid, 2)

	header := grid[0]
	assert.Equal(t, []string{
		"Barcode ID", "Item Name", "Description", "Unit Quantity", "Unit Type",
		"Total Quantity", "Remaining", "Total Units Available", "Main", "Side",
	}, header)

	row := grid[1]
	require.Len(t, row, len(header))
	assert.Equal(t, "111", row[0])
	assert.Equal(t, "Tape", row[1])
	assert.Equal(t, "black", row[2])
	assert.Equal(t, "50", row[3])
	assert.Equal(t, "meters per roll", row[4])
	assert.Equal(t, "10", row[5])
	assert.Equal(t, "7", row[6])
	// remaining 7 * unitQuantity 50
	assert.Equal(t, "350", row[7])
	// Stage columns in registry order: usage 3 for Main, 0 for Side.
	assert.Equal(t, "3", row[8])
	assert.Equal(t, "0", row[9])
}

func TestReport_RowsFollowLedgerOrder(t *testing.T) {
	l, stages := buildState(t)
	grid := Report(l, stages)
	require.Len(t, grid, 3)
	assert.Equal(t, "111", grid[1][0])
	assert.Equal(t, "222", grid[2][0])
}
