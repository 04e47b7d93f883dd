package queue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestHandleMessage_AppendsLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	at := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

	for _, ev := range []SeatingGeneratedEvent{
		{EventID: "e1", TableCount: 3, Seated: 10, VIPTables: 2, GeneratedBy: "u-7", GeneratedAt: at},
		{EventID: "e1", TableCount: 3, Seated: 10, DryRun: true, GeneratedAt: at},
	} {
		body, err := json.Marshal(ev)
		require.NoError(t, err)
		require.NoError(t, handleMessage(dir, body))
	}

	raw, err := os.ReadFile(filepath.Join(dir, "seating.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "[2026-05-04T09:30:00Z] Seating generated | event_id=e1 | tables=3 | seated=10 | vip_tables=2 | dry_run=false | by=u-7", lines[0])
	require.Contains(t, lines[1], "dry_run=true | by=-")
}

func TestHandleMessage_RejectsBadPayloads(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, handleMessage(dir, []byte("{not json")))
	require.ErrorContains(t, handleMessage(dir, []byte(`{"table_count":1}`)), "event_id")

	_, err := os.Stat(filepath.Join(dir, "seating.log"))
	require.True(t, os.IsNotExist(err))
}

func TestNextBackoff_Caps(t *testing.T) {
	d := time.Second
	for i := 0; i < 10; i++ {
		d = nextBackoff(d)
	}
	require.Equal(t, maxBackoff, d)
	require.Equal(t, 4*time.Second, nextBackoff(2*time.Second))
}
