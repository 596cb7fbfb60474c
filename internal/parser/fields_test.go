package parser

import (
	"errors"
	"testing"

	"fjacquet/charge-calc/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabularPoint(t *testing.T) {
	tests := []struct {
		name       string
		fields     []string
		time       float64
		voltage    float64
		current    float64
		charge     float64
		hasCharge  bool
		wantErrFld string
	}{
		{name: "full row", fields: []string{"1", "3.7", "0.5", "x", "0.25"}, time: 1, voltage: 3.7, current: 0.5, charge: 0.25, hasCharge: true},
		{name: "empty charge cell", fields: []string{"1", "3.7", "0.5", "", ""}, time: 1, voltage: 3.7, current: 0.5},
		{name: "short row", fields: []string{"2", "3.7", "0.5"}, time: 2, voltage: 3.7, current: 0.5},
		{name: "empty numeric cells become zero", fields: []string{"", "3.7", ""}, voltage: 3.7},
		{name: "missing numeric cells become zero", fields: []string{"4"}, time: 4},
		{name: "column four is not the charge", fields: []string{"1", "2", "3", "9"}, time: 1, voltage: 2, current: 3},
		{name: "bad current", fields: []string{"1", "2", "amps"}, wantErrFld: "current"},
		{name: "bad charge", fields: []string{"1", "2", "3", "", "n/a"}, wantErrFld: "charge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := Tabular.point(Record{Line: 4, Key: "dp", Fields: tt.fields})
			if tt.wantErrFld != "" {
				var malformed *parsererror.MalformedRecordError
				require.True(t, errors.As(err, &malformed))
				assert.Equal(t, tt.wantErrFld, malformed.Field)
				assert.Equal(t, 4, malformed.Line)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.time, point.Time)
			assert.Equal(t, tt.voltage, point.Voltage)
			assert.Equal(t, tt.current, point.Current)
			q, ok := point.ReportedCharge()
			assert.Equal(t, tt.hasCharge, ok)
			assert.Equal(t, tt.charge, q)
		})
	}
}

func TestLinePoint(t *testing.T) {
	point, err := LineText.point(Record{Key: "dp", Fields: []string{"1.5", "3.7", "-0.2", "0.9", "42"}})
	require.NoError(t, err)
	assert.Equal(t, 1.5, point.Time)
	assert.Equal(t, 3.7, point.Voltage)
	assert.Equal(t, -0.2, point.Current)
	_, ok := point.ReportedCharge()
	assert.False(t, ok, "line encoding never reports charge")

	_, err = LineText.point(Record{Key: "dp", Fields: []string{"1", "2"}})
	var malformed *parsererror.MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "fields", malformed.Field)

	_, err = LineText.point(Record{Key: "dp", Fields: []string{"1", "", "2"}})
	require.Error(t, err)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		prev    int
		hasPrev bool
		want    int
		wantErr bool
	}{
		{name: "explicit", fields: []string{"5"}, want: 5},
		{name: "missing without previous", want: 1},
		{name: "missing with previous", prev: 3, hasPrev: true, want: 4},
		{name: "empty cell", fields: []string{" "}, prev: 1, hasPrev: true, want: 2},
		{name: "float cell", fields: []string{"2.0"}, want: 2},
		{name: "unparsable", fields: []string{"x"}, prev: 8, hasPrev: true, want: 9, wantErr: true},
		{name: "fractional", fields: []string{"1.5"}, want: 1, wantErr: true},
		{name: "previous zero still increments", fields: nil, prev: 0, hasPrev: true, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseID(Record{Key: "cy", Fields: tt.fields}, tt.prev, tt.hasPrev)
			assert.Equal(t, tt.want, id)
			if tt.wantErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
