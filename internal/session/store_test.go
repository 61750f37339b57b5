package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gou177/vezdecod-API-50/internal/model"
)

func TestStorePutGet(t *testing.T) {
	st := NewStore()
	s := newTestSession()

	st.Put(s)
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(s.Token)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestStoreGetMissing(t *testing.T) {
	st := NewStore()

	_, err := st.Get("no-such-token")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestStoreRemove(t *testing.T) {
	st := NewStore()
	s := newTestSession()
	st.Put(s)

	st.Remove(s.Token)
	assert.Equal(t, 0, st.Len())

	_, err := st.Get(s.Token)
	assert.ErrorIs(t, err, model.ErrGameNotFound)

	// Removing again is a no-op
	st.Remove(s.Token)
}
