package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/circuitsim/core"
	"github.com/xDarkicex/circuitsim/engine"
)

func idFrom(n int64) core.ID { return core.ID(n) }
func itoa(n int64) string    { return strconv.FormatInt(n, 10) }

func newTestRouter(t *testing.T) (*gin.Engine, *engine.Circuit) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c := engine.New()
	r := gin.New()
	New(c, zerolog.Nop()).Routes(r)
	return r, c
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAddComponentAndConnectAndTruthTable(t *testing.T) {
	r, c := newTestRouter(t)

	recA := doJSON(t, r, http.MethodPost, "/components", addComponentRequest{Input: true, Label: "A", Value: true})
	assert.Equal(t, http.StatusOK, recA.Code)
	var addResp struct{ ID int64 }
	require.NoError(t, json.Unmarshal(recA.Body.Bytes(), &addResp))

	recNot := doJSON(t, r, http.MethodPost, "/components", addComponentRequest{Kind: "NOT", Label: "B"})
	assert.Equal(t, http.StatusOK, recNot.Code)
	var notResp struct{ ID int64 }
	require.NoError(t, json.Unmarshal(recNot.Body.Bytes(), &notResp))

	recConn := doJSON(t, r, http.MethodPost, "/connect", connectRequest{Receiver: idFrom(notResp.ID), Pin: 1, Emitter: idFrom(addResp.ID)})
	assert.Equal(t, http.StatusOK, recConn.Code)

	require.NoError(t, c.PowerOn())

	v, ok := c.State(idFrom(notResp.ID))
	require.True(t, ok)
	assert.False(t, v) // A=1 -> NOT(A)=0

	recTable := doJSON(t, r, http.MethodGet, "/truth-table", nil)
	assert.Equal(t, http.StatusOK, recTable.Code)
}

func TestSetStateBeforePowerOnFails(t *testing.T) {
	r, _ := newTestRouter(t)
	recA := doJSON(t, r, http.MethodPost, "/components", addComponentRequest{Input: true, Label: "A"})
	var addResp struct{ ID int64 }
	require.NoError(t, json.Unmarshal(recA.Body.Bytes(), &addResp))

	rec := doJSON(t, r, http.MethodPost, "/state/"+itoa(addResp.ID), setStateRequest{Value: true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
