package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
	"github.com/aberghammer-analytics/nbastatgo/internal/standardize"
)

func TestConvertScalar(t *testing.T) {
	fields := registry.DefaultFields()

	tests := []struct {
		name      string
		converter string
		value     string
		want      any
		wantErr   bool
	}{
		{"pad id", "id", "203507", "0000203507", false},
		{"iso date", "date", "2024-01-15", "2024-01-15", false},
		{"us date", "date", "01/15/2024", "2024-01-15", false},
		{"minutes", "minutes", "12:30", int64(750), false},
		{"clock", "clock", "PT11M23S", int64(683), false},
		{"height", "height", "6-11", int64(83), false},
		{"weight", "weight", "220 lbs", int64(220), false},
		{"winloss", "winloss", "won", "W", false},
		{"season", "season", "2023", "2023-24", false},
		{"bad date", "date", "not a date", nil, true},
		{"unknown converter", "celsius", "30", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertScalar(fields, tt.converter, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertScalar_CustomDateFormat(t *testing.T) {
	fields := registry.DefaultFields()
	fields.AddDateFormat("2006.01.02")

	got, err := ConvertScalar(fields, "date", "2024.01.15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", got)
}

func TestFailureMessages(t *testing.T) {
	msgs := failureMessages([]standardize.Failure{
		{Column: "pts", Row: 2, Value: "thirty", Reason: "cannot read string as integer"},
		{Column: "GAMEID", Row: -1, Reason: `rename to "game_id" skipped`},
	})

	require.Len(t, msgs, 2)
	assert.Equal(t, `column "pts" row 2: cannot read string as integer`, msgs[0])
	assert.Equal(t, `column "GAMEID": rename to "game_id" skipped`, msgs[1])
}

func TestNew_RegistersServer(t *testing.T) {
	s := New(nil, "test")
	require.NotNil(t, s.mcp)
	require.NotNil(t, s.standardizer)
	require.NotNil(t, s.fields)
}

func TestJSONResult(t *testing.T) {
	result, err := jsonResult(map[string]any{"passed": true})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
}

func TestParseJSON(t *testing.T) {
	var names []string
	require.NoError(t, parseJSON(`["player_id","team_id"]`, &names))
	assert.Equal(t, []string{"player_id", "team_id"}, names)

	var bounds map[string][2]float64
	require.NoError(t, parseJSON(`{"age":[15,50]}`, &bounds))
	assert.Equal(t, [2]float64{15, 50}, bounds["age"])

	require.Error(t, parseJSON(`{"age":`, &bounds))
}
