package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"drawpoker-server/internal/util"
	"drawpoker-server/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rowScanner []interface{}

func (r rowScanner) Scan(dest ...interface{}) error {
	if len(dest) != len(r) {
		return errors.New("column count mismatch")
	}

	for i, v := range r {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *int64:
			*d = v.(int64)
		case *[]byte:
			*d = v.([]byte)
		case *time.Time:
			*d = v.(time.Time)
		}
	}

	return nil
}

func TestScanRound(t *testing.T) {
	data, _ := json.Marshal(seats{
		Winners: []Seat{{Name: "alice", Category: "Flush", Payout: 200}},
		Losers:  []Seat{{Name: "bob", Category: "Pair"}},
	})
	now := time.Now()

	r, err := scanRound(rowScanner{"friday", 7, int64(200), int64(200), data, now, now})
	require.NoError(t, err)
	assert.Equal(t, "friday", r.Game)
	assert.Equal(t, 7, r.Number)
	assert.Equal(t, "alice", r.Winners[0].Name)
	assert.Equal(t, "bob", r.Losers[0].Name)

	_, err = scanRound(rowScanner{"friday", 7, int64(0), int64(0), []byte("nope"), now, now})
	assert.Error(t, err)
}

func TestSQLRecorder(t *testing.T) {
	if util.Getenv("DPS_PG_DSN", "") == "" {
		t.Skip("DPS_PG_DSN is not set")
	}

	clear1 := util.SetEnv("DPS_MIGRATIONS_PATH", "../../sql")
	defer clear1()

	require.NoError(t, db.Migrate())

	rec := NewSQLRecorder(db.Instance())
	game := util.RandomGameName()
	started := time.Now().Add(-time.Minute).UTC().Truncate(time.Second)

	for i := 1; i <= 3; i++ {
		require.NoError(t, rec.Record(context.Background(), &Round{
			Game:    game,
			Number:  i,
			Pot:     int64(100 * i),
			Share:   int64(100 * i),
			Winners: []Seat{{Name: "alice", Payout: int64(100 * i)}},
			Started: started,
			Ended:   started.Add(time.Second),
		}))
	}

	rounds, err := rec.Recent(context.Background(), game, 2)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, 3, rounds[0].Number)
	assert.Equal(t, 2, rounds[1].Number)
	assert.EqualValues(t, 300, rounds[0].Winners[0].Payout)
	assert.True(t, started.Equal(rounds[0].Started))
}
