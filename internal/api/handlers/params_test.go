package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id.String()})
	got, err := PathUUID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "7"})
	_, err = PathUUID(r, "id")
	assert.Error(t, err)

	_, err = PathUUID(httptest.NewRequest(http.MethodGet, "/", nil), "id")
	assert.Error(t, err)
}

func TestQueryParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?active=true&limit=20&bad=x", nil)

	active, err := QueryBool(r, "active", false)
	require.NoError(t, err)
	assert.True(t, active)

	missing, err := QueryBool(r, "missing", true)
	require.NoError(t, err)
	assert.True(t, missing)

	limit, err := QueryInt(r, "limit", 50)
	require.NoError(t, err)
	assert.Equal(t, 20, limit)

	_, err = QueryInt(r, "bad", 50)
	assert.Error(t, err)
	_, err = QueryBool(r, "bad", false)
	assert.Error(t, err)
}
