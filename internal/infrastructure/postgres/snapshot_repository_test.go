package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/infrastructure/postgres"
)

// fakeRow implementa pgx.Row devolviendo un valor o un error fijo.
type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.data
	return nil
}

// fakeQuerier guarda en memoria lo que recibiría la tabla inventory_snapshots.
type fakeQuerier struct {
	rows    map[string][]byte
	execErr error
	lastSQL string
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL = sql
	if q.execErr != nil {
		return pgconn.CommandTag{}, q.execErr
	}
	if len(args) == 2 {
		q.rows[args[0].(string)] = []byte(args[1].(string))
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	data, ok := q.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{data: data}
}

func TestSnapshotRepo_LoadSinFila(t *testing.T) {
	repo := postgres.NewSnapshotRepository(&fakeQuerier{rows: map[string][]byte{}}, "inventory_data")

	data, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSnapshotRepo_SaveYLoad(t *testing.T) {
	q := &fakeQuerier{rows: map[string][]byte{}}
	repo := postgres.NewSnapshotRepository(q, "inventory_data")
	ctx := context.Background()

	require.NoError(t, repo.Migrate(ctx))
	assert.Contains(t, q.lastSQL, "CREATE TABLE IF NOT EXISTS inventory_snapshots")

	require.NoError(t, repo.Save(ctx, []byte(`{"version":1}`)))
	assert.Contains(t, q.lastSQL, "ON CONFLICT (key)")

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1}`, string(data))
}

func TestSnapshotRepo_ErrorAlGuardar(t *testing.T) {
	boom := errors.New("conexión cerrada")
	repo := postgres.NewSnapshotRepository(&fakeQuerier{rows: map[string][]byte{}, execErr: boom}, "k")

	err := repo.Save(context.Background(), []byte(`{}`))

	assert.ErrorIs(t, err, boom)
}
