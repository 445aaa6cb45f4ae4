package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriStateJSON(t *testing.T) {
	type payload struct {
		Flag TriState `json:"flag"`
	}

	out, err := json.Marshal(payload{Flag: TriUnknown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"flag":null}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"flag":true}`), &in))
	assert.Equal(t, TriYes, in.Flag)

	require.NoError(t, json.Unmarshal([]byte(`{"flag":null}`), &in))
	assert.Equal(t, TriUnknown, in.Flag)

	assert.Error(t, json.Unmarshal([]byte(`{"flag":"yes"}`), &in))
}

func TestTriStateSQL(t *testing.T) {
	var flag TriState
	require.NoError(t, flag.Scan(nil))
	assert.Equal(t, TriUnknown, flag)

	require.NoError(t, flag.Scan(true))
	assert.Equal(t, TriYes, flag)

	require.NoError(t, flag.Scan(false))
	assert.Equal(t, TriNo, flag)

	assert.Error(t, flag.Scan("yes"))

	v, err := TriUnknown.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = TriYes.Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestTriStateFromBool(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, TriUnknown, TriStateFromBool(nil))
	assert.Equal(t, TriYes, TriStateFromBool(&yes))
	assert.Equal(t, TriNo, TriStateFromBool(&no))
}
