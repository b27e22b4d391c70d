package database

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "..", "migrations", name))
	require.NoError(t, err)
	return strings.Join(strings.Fields(string(b)), " ")
}

func TestInitMigrationLedgerEntryKinds(t *testing.T) {
	schema := readMigration(t, "000001_init.up.sql")

	check := regexp.MustCompile(`CONSTRAINT ledger_entries_single_kind CHECK \((.*?)\) \);`).FindStringSubmatch(schema)
	require.Len(t, check, 2)

	// at most one counterpart reference per entry
	assert.Contains(t, check[1], "NOT (recipient_transaction_id IS NOT NULL AND sender_transaction_id IS NOT NULL)")
	// article entries carry no counterpart
	assert.Contains(t, check[1], "article_id IS NULL OR (recipient_transaction_id IS NULL AND sender_transaction_id IS NULL)")
}

func TestInitMigrationIsReversible(t *testing.T) {
	up := readMigration(t, "000001_init.up.sql")
	down := readMigration(t, "000001_init.down.sql")

	for _, table := range []string{"ledger_entries", "articles", "accounts"} {
		assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS "+table)
		assert.Contains(t, down, table)
	}
}
