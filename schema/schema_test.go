package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesGet(t *testing.T) {
	v := Values{"clicks": 20}
	assert.Equal(t, 20.0, v.Get("clicks"))
	assert.True(t, math.IsNaN(v.Get("impressions")))

	var empty Values
	assert.True(t, math.IsNaN(empty.Get("clicks")))
}

func TestValuesClone(t *testing.T) {
	v := Values{"clicks": 20}
	c := v.Clone()
	c["clicks"] = 30
	assert.Equal(t, 20.0, v["clicks"])

	var empty Values
	assert.NotNil(t, empty.Clone())
}

func TestTierMatches(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		v    float64
		want bool
	}{
		{"at least on boundary", Tier{Op: AtLeast, Bound: 2}, 2, true},
		{"at least below", Tier{Op: AtLeast, Bound: 2}, 1.99, false},
		{"at most on boundary", Tier{Op: AtMost, Bound: 5}, 5, true},
		{"at most above", Tier{Op: AtMost, Bound: 5}, 5.01, false},
		{"above is strict", Tier{Op: Above, Bound: 0}, 0, false},
		{"above", Tier{Op: Above, Bound: 0}, 0.1, true},
		{"unsupported less-than", Tier{Op: "<", Bound: 1}, 0.5, false},
		{"otherwise", Tier{Op: Otherwise}, -42, true},
		{"nan never compares", Tier{Op: AtLeast, Bound: 0}, math.NaN(), false},
		{"nan never at most", Tier{Op: AtMost, Bound: 0}, math.NaN(), false},
		{"nan hits otherwise", Tier{Op: Otherwise}, math.NaN(), true},
		{"infinity at least", Tier{Op: AtLeast, Bound: 2}, math.Inf(1), true},
		{"unknown op", Tier{Op: "=="}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tier.Matches(tt.v))
		})
	}
}

func TestTierCondition(t *testing.T) {
	assert.Equal(t, ">= 2", Tier{Op: AtLeast, Bound: 2}.Condition())
	assert.Equal(t, "<= 0.5", Tier{Op: AtMost, Bound: 0.5}.Condition())
	assert.Equal(t, "otherwise", Tier{Op: Otherwise}.Condition())
}

func TestFormatRender(t *testing.T) {
	assert.Equal(t, "2.00%", PercentFormat.Render(2))
	assert.Equal(t, "R$ 2.00", CurrencyFormat.Render(2))
	assert.Equal(t, "6.00 minutos", MinutesFormat.Render(6))
	assert.Equal(t, "50", ScoreFormat.Render(50))
	assert.Equal(t, "Infinity%", PercentFormat.Render(math.Inf(1)))
	assert.Equal(t, "R$ NaN", CurrencyFormat.Render(math.NaN()))
}

func TestNumberMarshalJSON(t *testing.T) {
	type payload struct {
		Value Number `json:"value"`
	}

	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"finite", 2, `{"value":2}`},
		{"fraction", 1.9, `{"value":1.9}`},
		{"nan", math.NaN(), `{"value":"NaN"}`},
		{"inf", math.Inf(1), `{"value":"Infinity"}`},
		{"neg inf", math.Inf(-1), `{"value":"-Infinity"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(payload{Value: Number(tt.v)})
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestMetricSummaryAndFields(t *testing.T) {
	m := Metric{
		ID:          "ctr",
		Group:       CommonGroup,
		Name:        "CTR",
		Description: "clicks over impressions",
		Fields:      []MetricField{{ID: "clicks"}, {ID: "impressions"}},
	}

	assert.Equal(t, Summary{ID: "ctr", Name: "CTR", Description: "clicks over impressions", Group: CommonGroup}, m.Summary())
	assert.Equal(t, []string{"clicks", "impressions"}, m.FieldIDs())
}

func TestTierRows(t *testing.T) {
	rows := TierRows([]Tier{
		{Op: AtLeast, Bound: 2, Level: ExcellentLevel, Text: "great"},
		{Op: Otherwise, Level: PoorLevel, Text: "poor"},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, TierRow{Condition: ">= 2", Level: ExcellentLevel, Text: "great"}, rows[0])
	assert.Equal(t, "otherwise", rows[1].Condition)
}

func TestBatchResultOK(t *testing.T) {
	assert.True(t, BatchResult{Result: &Result{}}.OK())
	assert.False(t, BatchResult{Error: "metric not found"}.OK())
	assert.False(t, BatchResult{}.OK())
}
