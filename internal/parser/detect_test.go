package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name    string
		head    []byte
		want    Encoding
		wantErr bool
	}{
		{name: "line records", head: []byte("cy 1\nst 1\ndp 0 3.6 1\n"), want: LineText},
		{name: "metadata first", head: []byte("Header\nve 1\ncy 1\n"), want: LineText},
		{name: "crlf lines", head: []byte("cy 1\r\nst 1\r\n"), want: LineText},
		{name: "single key line", head: []byte("cy 1\nhello\n"), wantErr: true},
		{name: "keys past the fifth line", head: []byte("a\nb\nc\nd\ne\ncy 1\nst 1\n"), wantErr: true},
		{name: "upper case keys", head: []byte("CY 1\nST 1\n"), wantErr: true},
		{name: "empty", head: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, reason, err := DetectEncoding(tt.head)
			if tt.wantErr {
				assert.Error(t, err)
				assert.NotEmpty(t, reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc)
			assert.Equal(t, "record key lines", reason)
		})
	}
}

func TestDetectEncoding_Workbook(t *testing.T) {
	enc, reason, err := DetectEncoding(workbook(t, [][]interface{}{{"cy", 1}}))
	require.NoError(t, err)
	assert.Equal(t, Tabular, enc)
	assert.Contains(t, reason, "zip signature")
}
