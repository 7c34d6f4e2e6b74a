package engine

import (
	"testing"

	"github.com/FynnK/FestivalInventory/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEngine(t *testing.T) (*TransactionEngine, *ledger.Ledger, *ledger.StageRegistry) {
	t.Helper()
	l := ledger.New()
	stages := ledger.NewStageRegistry()
	require.NoError(t, stages.Add("Main Stage"))
	return NewTransactionEngine(l, stages), l, stages
}

func seedItem(t *testing.T, l *ledger.Ledger, id, name string, qty int) {
	t.Helper()
	_, err := l.CreateItem(id, name, qty, 1, "", "")
	require.NoError(t, err)
}

func TestScan_DedupsIntoOneLine(t *testing.T) {
	e, l, _ := buildEngine(t)
	seedItem(t, l, "111", "Tape", 10)

	line, err := e.Scan("111")
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	line, err = e.Scan("111")
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	lines := e.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "111", lines[0].ItemID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestScan_UnknownItem(t *testing.T) {
	e, _, _ := buildEngine(t)

	_, err := e.Scan("nope")
	var unknown *ledger.UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Code)
	assert.Empty(t, e.Lines())
}

func TestAdjustQuantity_ClampsToOne(t *testing.T) {
	e, l, _ := buildEngine(t)
	seedItem(t, l, "111", "Tape", 10)
	_, err := e.Scan("111")
	require.NoError(t, err)

	line, err := e.AdjustQuantity("111", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	// Never drops below 1, and never removes the line via this path.
	line, err = e.AdjustQuantity("111", -100)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Len(t, e.Lines(), 1)

	_, err = e.AdjustQuantity("missing", 1)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestRemoveLine(t *testing.T) {
	e, l, _ := buildEngine(t)
	seedItem(t, l, "111", "Tape", 10)
	_, err := e.Scan("111")
	require.NoError(t, err)

	require.NoError(t, e.RemoveLine("111"))
	assert.Empty(t, e.Lines())
	assert.ErrorIs(t, e.RemoveLine("111"), ledger.ErrNotFound)
}

func TestCancel(t *testing.T) {
	e, l, _ := buildEngine(t)
	seedItem(t, l, "111", "Tape", 10)
	_, err := e.Scan("111")
	require.NoError(t, err)

	e.Cancel()
	assert.Empty(t, e.Lines())
}

func TestCommit_AppliesAllLines(t *testing.T) {
	e, l, _ := buildEngine(t)
	seedItem(t, l, "111", "Tape", 10)
	seedItem(t, l, "222", "Cable", 5)

	for i := 0; i < 3; i++ {
		_, err := e.Scan("111")
		require.NoError(t, err)
	}
	_, err := e.Scan("222")
	require.NoError(t, err)

	result, err := e.Commit("Main Stage")
	require.NoError(t, err)
	assert.Equal(t, "Main Stage", result.Stage)
	assert.Len(t, result.Lines, 2)
	assert.NotZero(t, result.TransactionID)

	tape, _ := l.Get("111")
	assert.Equal(t, 7, tape.Remaining)
	assert.Equal(t, 3, tape.Usage["Main Stage"])
	cable, _ := l.Get("222")
	assert.Equal(t, 4, cable.Remaining)

	// Receipt resets to empty after a successful commit.
	assert.Empty(t, e.Lines())
}

// A receipt [(A,3),(B,5)] where A has remaining=3 and B has remaining=2
// must apply neither line and report the shortfall for B.
func TestCommit_Atomicity(t *testing.T) {
	e, l, _ := buildEngine(t)
	seedItem(t, l, "A", "Item A", 3)
	seedItem(t, l, "B", "Item B", 2)

	for i := 0; i < 3; i++ {
		_, err := e.Scan("A")
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		_, err := e.Scan("B")
		require.NoError(t, err)
	}

	_, err := e.Commit("Main Stage")
	var insufficient *ledger.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "B", insufficient.ItemID)
	assert.Equal(t, 2, insufficient.Available)

	// Neither line applied — A's remaining stays 3.
	a, _ := l.Get("A")
	assert.Equal(t, 3, a.Remaining)
	assert.Empty(t, a.Usage)
	b, _ := l.Get("B")
	assert.Equal(t, 2, b.Remaining)
	assert.Empty(t, b.Usage)

	// The receipt survives a failed commit for the operator to fix up.
	assert.Len(t, e.Lines(), 2)
}

func TestCommit_EmptyReceipt(t *testing.T) {
	e, _, _ := buildEngine(t)
	_, err := e.Commit("Main Stage")
	assert.ErrorIs(t, err, ledger.ErrEmptyReceipt)
}

func TestCommit_NoLocationSelected(t *testing.T) {
	e, l, _ := buildEngine(t)
	seedItem(t, l, "111", "Tape", 10)
	_, err := e.Scan("111")
	require.NoError(t, err)

	_, err = e.Commit("")
	assert.ErrorIs(t, err, ledger.ErrNoLocationSelected)

	_, err = e.Commit("Unknown Tent")
	assert.ErrorIs(t, err, ledger.ErrNoLocationSelected)

	// Failed precondition checks leave the receipt intact.
	assert.Len(t, e.Lines(), 1)
}
