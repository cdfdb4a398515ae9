package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	script := `CREATE TABLE a (
    id NUMBER
);

CREATE INDEX idx_a ON a (id);
INSERT INTO a (id) VALUES (1)`

	stmts := splitStatements(script)
	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE a (\n    id NUMBER\n)", stmts[0])
	assert.Equal(t, "CREATE INDEX idx_a ON a (id)", stmts[1])
	assert.Equal(t, "INSERT INTO a (id) VALUES (1)", stmts[2])
}

func TestListOracleMigrations(t *testing.T) {
	migrations, err := listOracleMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, uint64(1), migrations[0].version)
	assert.Equal(t, uint64(2), migrations[1].version)
}

func TestOracleSeedSplitsIntoInserts(t *testing.T) {
	content, err := migrationsFS.ReadFile("migrations/oracle/000002_seed_quiz_questions.up.sql")
	require.NoError(t, err)
	stmts := splitStatements(string(content))
	assert.Len(t, stmts, 4)
	for _, s := range stmts {
		assert.Contains(t, s, "INSERT INTO quiz_questions")
	}
}

func TestMigrator_SQLiteUpDown(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLXSQLiteDB(":memory:")
	require.NoError(t, err)

	mg, err := NewMigrator(db, DriverSQLite)
	require.NoError(t, err)
	defer mg.Close()

	require.NoError(t, mg.Up(ctx))
	v, dirty, err := mg.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)
	assert.False(t, dirty)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM quiz_questions`))
	assert.Equal(t, 4, count)

	// Already current.
	require.NoError(t, mg.Up(ctx))

	require.NoError(t, mg.Down(1))
	v, _, err = mg.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM quiz_questions`))
	assert.Equal(t, 0, count)

	require.NoError(t, mg.Down(0))
	v, _, err = mg.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(0), v)
}

func TestMigrator_OracleDownUnsupported(t *testing.T) {
	mg, err := NewMigrator(nil, DriverOracle)
	require.NoError(t, err)
	assert.ErrorIs(t, mg.Down(1), ErrDownUnsupported)
	assert.NoError(t, mg.Close())
}
