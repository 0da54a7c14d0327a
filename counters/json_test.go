package counters_test

import (
	"encoding/json"
	"testing"

	"github.com/databrickslabs/sandbox/heavybag/counters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	b := aaabbc()
	_, err := b.AddMany("heavy", counters.MaxAddMany)
	require.NoError(t, err)
	_, err = b.AddMany("heavy", counters.MaxAddMany)
	require.NoError(t, err)

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var restored counters.Bag[string]
	err = json.Unmarshal(raw, &restored)
	require.NoError(t, err)

	assert.True(t, b.Equal(&restored))
	assert.Equal(t, b.Hash(), restored.Hash())
	assert.Equal(t, int64(2*counters.MaxAddMany), restored.Count("heavy"))
}

func TestMarshalEmpty(t *testing.T) {
	raw, err := json.Marshal(counters.New[int]())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestUnmarshalSumsRepeatedElements(t *testing.T) {
	var b counters.Bag[string]
	err := json.Unmarshal([]byte(`[{"element":"a","count":2},{"element":"a","count":1},{"element":"c","count":1}]`), &b)
	require.NoError(t, err)
	assert.Equal(t, "{a:3 c:1}", b.String())
	assert.Equal(t, int64(4), b.Len())
}

func TestUnmarshalRejectsNonPositiveCounts(t *testing.T) {
	b := aaabbc()
	err := json.Unmarshal([]byte(`[{"element":"a","count":0}]`), b)
	assert.ErrorIs(t, err, counters.ErrInvalidArgument)
	assert.True(t, b.Equal(aaabbc()))
}

func TestUnmarshalRejectsOverflow(t *testing.T) {
	for _, doc := range []string{
		`[{"element":"a","count":9223372036854775807},{"element":"b","count":1}]`,
		`[{"element":"a","count":9223372036854775807},{"element":"a","count":1}]`,
	} {
		b := aaabbc()
		err := json.Unmarshal([]byte(doc), b)
		assert.ErrorIs(t, err, counters.ErrInvalidArgument, doc)
		assert.True(t, b.Equal(aaabbc()), doc)
		assert.Equal(t, int64(6), b.Len(), doc)
	}

	var b counters.Bag[string]
	err := json.Unmarshal([]byte(`[{"element":"a","count":9223372036854775806},{"element":"b","count":1}]`), &b)
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), b.Len())
}

func TestUnmarshalInvalidatesCursors(t *testing.T) {
	b := aaabbc()
	c := b.Iterator()
	require.NoError(t, json.Unmarshal([]byte(`[{"element":"q","count":1}]`), b))

	_, err := c.Next()
	assert.ErrorIs(t, err, counters.ErrConcurrentModification)
}
