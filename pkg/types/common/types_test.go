package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID_Unprefixed(t *testing.T) {
	id := GenerateID("")
	assert.True(t, id.IsValid())
	assert.Len(t, id.String(), 36)
}

func TestGenerateID_Prefixed(t *testing.T) {
	id := GenerateID("run")
	assert.True(t, id.IsValid())
	assert.Contains(t, id.String(), "run-")
}

func TestID_IsValid_Garbage(t *testing.T) {
	assert.False(t, ID("not-a-uuid").IsValid())
	assert.False(t, ID("").IsValid())
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	orig := Timestamp(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, orig.Time().Equal(back.Time()))
}

func TestAPIResponse_ErrorShape(t *testing.T) {
	resp := APIResponse[any]{
		Success: false,
		Error:   &ErrorDetail{Code: "COMMON_003", Message: "not found"},
	}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"code":"COMMON_003"`)
}
