package store_test

import (
	"testing"

	domctx "github.com/reoring/domctx"
	"github.com/reoring/domctx/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContexts_UnknownVersion(t *testing.T) {
	_, err := store.DecodeContexts([]byte(`{"version": 99, "contexts": []}`))
	require.Error(t, err)
	iss, ok := domctx.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, domctx.CodeUnknownVersion, iss[0].Code)
	assert.Equal(t, "/version", iss[0].Path)
}

func TestDecodeContexts_UnknownValueKind(t *testing.T) {
	data := []byte(`{
	  "version": 1,
	  "contexts": [{
	    "id": "x", "time": "2026-08-01T12:00:00Z",
	    "attributes": {}, "metas": {},
	    "values": {"sel": {"kind": "tuple"}}
	  }]
	}`)
	_, err := store.DecodeContexts(data)
	require.Error(t, err)
	iss, ok := domctx.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, domctx.CodeInvalidType, iss[0].Code)
	assert.Equal(t, "/values/sel", iss[0].Path)
}

func TestDecodeContexts_NormalizesIndexLists(t *testing.T) {
	data := []byte(`{
	  "version": 1,
	  "contexts": [{
	    "id": "x", "time": "2026-08-01T12:00:00Z",
	    "attributes": {}, "metas": {},
	    "values": {
	      "selected": {"kind": "raw", "raw": [0, 2, 5]},
	      "note": {"kind": "raw", "raw": "keep me"}
	    }
	  }]
	}`)
	ctxs, err := store.DecodeContexts(data)
	require.NoError(t, err)
	require.Len(t, ctxs, 1)

	assert.Equal(t, []int{0, 2, 5}, ctxs[0].Values["selected"].Raw)
	assert.Equal(t, "keep me", ctxs[0].Values["note"].Raw)
}

func TestEncodeContexts_Empty(t *testing.T) {
	data, err := store.EncodeContexts(nil)
	require.NoError(t, err)

	ctxs, err := store.DecodeContexts(data)
	require.NoError(t, err)
	assert.Empty(t, ctxs)
}
