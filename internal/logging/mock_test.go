package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_SharedStore(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldFile, "a.edf").WithError(errors.New("boom"))

	child.Warn("skipped", F(FieldLine, 3))
	mock.Info("done")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, []Field{{Key: FieldFile, Value: "a.edf"}, {Key: FieldLine, Value: 3}}, entries[0].Fields)
	assert.EqualError(t, entries[0].Error, "boom")
	assert.True(t, mock.HasEntry("INFO", "done"))
	assert.Len(t, mock.EntriesByLevel("WARN"), 1)

	mock.Clear()
	assert.Empty(t, mock.Entries())
}

func TestMockLogger_ZeroValue(t *testing.T) {
	var mock MockLogger
	mock.Fatalf("failed: %d", 7)
	assert.True(t, mock.HasEntry("FATAL", "failed: 7"))
}
