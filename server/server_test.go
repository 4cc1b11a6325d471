package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsnake/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postSolve(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.NewRouter().ServeHTTP(rec, req)

	return rec
}

func TestSolveEndpoint_Found(t *testing.T) {
	rec := postSolve(t, server.SolveRequest{
		Width:  5,
		Height: 5,
		Start:  server.Coord{X: 0, Y: 0},
		End:    server.Coord{X: 0, Y: 4},
		Method: "iterative",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp server.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	require.Len(t, resp.Path, 25)
	require.Equal(t, server.Coord{X: 0, Y: 0}, resp.Path[0])
	require.Equal(t, server.Coord{X: 0, Y: 4}, resp.Path[24])
	require.NotEmpty(t, resp.Diagram)
	require.Equal(t, "iterative", resp.Method)
	require.GreaterOrEqual(t, resp.ExecutionTimeMs, 0.0)
}

// TestSolveEndpoint_NotFound: an unsolvable grid is a 200 with found=false,
// never an error status.
func TestSolveEndpoint_NotFound(t *testing.T) {
	rec := postSolve(t, server.SolveRequest{
		Width:  5,
		Height: 5,
		Start:  server.Coord{X: 0, Y: 0},
		End:    server.Coord{X: 0, Y: 3},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp server.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Found)
	require.Empty(t, resp.Path)
	require.Empty(t, resp.Diagram)
	require.Equal(t, "recursive", resp.Method)
}

func TestSolveEndpoint_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		req  server.SolveRequest
	}{
		{"ZeroWidth", server.SolveRequest{Width: 0, Height: 3}},
		{"StartOutside", server.SolveRequest{
			Width: 3, Height: 3, Start: server.Coord{X: 5, Y: 0},
		}},
		{"EndOutside", server.SolveRequest{
			Width: 3, Height: 3, End: server.Coord{X: 0, Y: -1},
		}},
		{"UnknownMethod", server.SolveRequest{
			Width: 3, Height: 3, Method: "dijkstra",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postSolve(t, tc.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotEmpty(t, resp["error"])
		})
	}
}

func TestSolveEndpoint_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.NewRouter().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.NewRouter().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
