package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupWireFieldNames(t *testing.T) {
	g := Group{
		ID:             "1",
		Name:           "week 12 parcel",
		TrackingNumber: "TRK-9001",
		Channel:        "barry",
		MemberCodes:    []string{"B-1", "B-2"},
		CombinedPieces: 8,
		CreatedAt:      time.Now().UTC(),
		LastUpdated:    time.Now().UTC(),
	}

	raw, err := json.Marshal(g)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"tracking_number", "member_codes", "combined_pieces", "created_at", "last_updated"} {
		assert.Contains(t, fields, key)
	}
}

func TestHasMember(t *testing.T) {
	g := Group{MemberCodes: []string{"B-1", "B-2"}}
	assert.True(t, g.HasMember("B-2"))
	assert.False(t, g.HasMember("B-3"))
}
