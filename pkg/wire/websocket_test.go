package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketConn(t *testing.T) {
	conns := make(chan *WebSocketConn, 1)
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		conns <- NewWebSocketConn(ws)
	}))
	defer ts.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	c := <-conns
	defer c.Close()

	require.NoError(t, client.WriteMessage(websocket.TextMessage, []byte("bet\r\n25")))
	line, ok := readLine(t, c)
	assert.True(t, ok)
	assert.Equal(t, "bet", line)

	line, _ = readLine(t, c)
	assert.Equal(t, "25", line)

	require.NoError(t, c.Send("You don't have enough chips.", ""))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "2\nYou don't have enough chips.\n\n", string(msg))

	require.NoError(t, client.Close())
	_, ok = readLine(t, c)
	assert.False(t, ok)
}
