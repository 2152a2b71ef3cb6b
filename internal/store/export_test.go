package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s Store) {
	t.Helper()
	require.NoError(t, s.Set(KeyTasks, []byte(`[{"id":"t1","title":"Write report","completed":false}]`)))
	require.NoError(t, s.Set(KeyHabits, []byte(`[{"id":"h1","name":"meditate","completedDates":["2026-08-25"]}]`)))
	require.NoError(t, s.Set(KeySettings, []byte(`{"dailyCapacity":5}`)))
}

func TestExportImportRoundTrip(t *testing.T) {
	src := NewMemoryStore()
	seed(t, src)

	data, err := Export(src)
	require.NoError(t, err)

	dst := NewMemoryStore()
	require.NoError(t, Import(dst, data))

	for _, key := range KnownKeys() {
		want, err := src.Get(key)
		require.NoError(t, err)
		got, err := dst.Get(key)
		require.NoError(t, err)
		if want == nil {
			assert.Nil(t, got, "key %s", key)
			continue
		}
		assert.JSONEq(t, string(want), string(got), "key %s", key)
	}
}

func TestImportMalformedChangesNothing(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s)
	before, err := s.Get(KeyTasks)
	require.NoError(t, err)

	err = Import(s, []byte(`{"tasks": [`))
	require.Error(t, err)

	after, err := s.Get(KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestImportIgnoresUnknownKeys(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, Import(s, []byte(`{"bogus": {"x": 1}, "tasks": []}`)))

	raw, err := s.Get("bogus")
	require.NoError(t, err)
	assert.Nil(t, raw)

	tasks, err := s.Get(KeyTasks)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(tasks))
}

func TestExportIsValidPrettyJSON(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s)

	data, err := Export(s)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, KeyTasks)
	// Absent collections are omitted rather than exported as null.
	assert.NotContains(t, decoded, KeyGoals)
}

func TestMemoryStoreMissIsNil(t *testing.T) {
	s := NewMemoryStore()
	raw, err := s.Get(KeyTasks)
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, s.Set(KeyTasks, []byte(`[]`)))
	require.NoError(t, s.Remove(KeyTasks))
	raw, err = s.Get(KeyTasks)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	value := []byte(`[1]`)
	require.NoError(t, s.Set(KeyTasks, value))
	value[1] = '2'

	stored, err := s.Get(KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), stored)
}
