package engine

import (
	"testing"

	"github.com/FynnK/FestivalInventory/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportScan_IncrementsStock(t *testing.T) {
	l := ledger.New()
	_, err := l.CreateItem("X123", "Tape", 5, 1, "", "")
	require.NoError(t, err)
	e := NewImportEngine(l)

	item, err := e.Scan("X123")
	require.NoError(t, err)
	assert.Equal(t, 6, item.Total)

	item, err = e.Scan("X123")
	require.NoError(t, err)
	assert.Equal(t, 7, item.Total)
	assert.Equal(t, 7, item.Remaining)
}

func TestImportScan_UnknownItem(t *testing.T) {
	e := NewImportEngine(ledger.New())

	_, err := e.Scan("X123")
	var unknown *ledger.UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "X123", unknown.Code)
}
