package ipc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlayer records enqueued commands for assertions.
type fakePlayer struct {
	status PlayerStatus
	cmds   []Command
}

func (f *fakePlayer) Status() PlayerStatus       { return f.status }
func (f *fakePlayer) EnqueueCommand(cmd Command) { f.cmds = append(f.cmds, cmd) }

func doRequest(t *testing.T, player PlayerInterface, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	RegisterRoutes(e, player)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStatusHandler(t *testing.T) {
	player := &fakePlayer{status: PlayerStatus{
		Kind:     "crossfade",
		Progress: 0.5,
		Playing:  true,
		ImageA:   "/tmp/a.png",
		ImageB:   "/tmp/b.png",
	}}

	rec := doRequest(t, player, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotZero(t, resp.PID)
	assert.Equal(t, "crossfade", resp.Player.Kind)
	assert.Equal(t, 0.5, resp.Player.Progress)
	assert.Empty(t, player.cmds, "status must not enqueue anything")
}

func TestStopHandler(t *testing.T) {
	player := &fakePlayer{}
	rec := doRequest(t, player, http.MethodPost, "/stop", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, player.cmds, 1)
	assert.Equal(t, CommandStop, player.cmds[0].Type)
}

func TestLoadHandler(t *testing.T) {
	player := &fakePlayer{}
	rec := doRequest(t, player, http.MethodPost, "/load", `["/tmp/a.png","/tmp/b.png"]`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, player.cmds, 1)
	assert.Equal(t, CommandLoad, player.cmds[0].Type)
	assert.Equal(t, []string{"/tmp/a.png", "/tmp/b.png"}, player.cmds[0].Args)
}

func TestLoadHandlerRejectsWrongCount(t *testing.T) {
	player := &fakePlayer{}
	for _, body := range []string{`[]`, `["/tmp/a.png"]`, `["a","b","c"]`, `not json`} {
		rec := doRequest(t, player, http.MethodPost, "/load", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
	assert.Empty(t, player.cmds)
}

func TestSetHandler(t *testing.T) {
	player := &fakePlayer{}
	rec := doRequest(t, player, http.MethodPost, "/set", `{"kind":"cube","progress":0.25}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, player.cmds, 1)
	cmd := player.cmds[0]
	assert.Equal(t, CommandSet, cmd.Type)
	assert.Equal(t, "cube", cmd.Kind)
	assert.Equal(t, 0.25, cmd.Progress)
}

func TestSetHandlerRejectsUnknownKind(t *testing.T) {
	player := &fakePlayer{}
	rec := doRequest(t, player, http.MethodPost, "/set", `{"kind":"swirl"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, player.cmds)
}

func TestSetHandlerProgressOnly(t *testing.T) {
	player := &fakePlayer{}
	rec := doRequest(t, player, http.MethodPost, "/set", `{"progress":0.8}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, player.cmds, 1)
	assert.Empty(t, player.cmds[0].Kind)
	assert.Equal(t, 0.8, player.cmds[0].Progress)
}

func TestPlayPauseHandlers(t *testing.T) {
	player := &fakePlayer{}
	assert.Equal(t, http.StatusOK, doRequest(t, player, http.MethodPost, "/play", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, player, http.MethodPost, "/pause", "").Code)
	require.Len(t, player.cmds, 2)
	assert.Equal(t, CommandPlay, player.cmds[0].Type)
	assert.Equal(t, CommandPause, player.cmds[1].Type)
}
