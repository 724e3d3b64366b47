package paging

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2025, 6, 1, 12, 30, 0, 123456789, time.UTC)

	cursor := EncodeCursor(ts, id)
	gotT, gotID, err := DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotT))
	assert.Equal(t, id, gotID)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	for _, cursor := range []string{"", "not-base64!!", "bm9waXBl", "MTIzNA"} {
		_, _, err := DecodeCursor(cursor)
		assert.ErrorIs(t, err, ErrInvalidCursor, "cursor %q", cursor)
	}
}
