package trace_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/transportation/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_MarshalJSON(t *testing.T) {
	rec := trace.NewRecorder("northwest-corner", 1)
	rec.Record(trace.KindAllocate, &trace.Cell{Row: 0, Col: 0, Quantity: 10, Cost: 2},
		[]float64{0}, []float64{5}, trace.Info{trace.KeyPosition: trace.Position{}})

	raw, err := json.Marshal(rec.Steps()[0])
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 1.0, got["stepIndex"])
	assert.Equal(t, "allocate", got["kind"])
	assert.Equal(t, "northwest-corner", got["method"])
	assert.Equal(t, map[string]any{"row": 0.0, "col": 0.0, "quantity": 10.0, "cost": 2.0}, got["chosenCell"])
	assert.Equal(t, []any{0.0}, got["remainingSupplies"])
	assert.Contains(t, got, "additionalInfo")
	assert.Equal(t,
		"Step 1 (northwest-corner): ship 10 units from origin 1 to destination 1 at unit cost 2 (20). Origin 1 is exhausted.",
		got["description"])
}

func TestStep_MarshalJSONOmitsEmptyParts(t *testing.T) {
	raw, err := json.Marshal(trace.Step{Index: 2, Kind: trace.KindMatch, RemainingSupplies: []float64{}, RemainingDemands: []float64{}})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.NotContains(t, got, "chosenCell")
	assert.NotContains(t, got, "additionalInfo")
	assert.Equal(t, "Step 2: 0 of 0 rows can be assigned on zero cells.", got["description"])
}
