package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Supplier Notes")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.True(t, strings.HasSuffix(mf.UpPath, "_add_supplier_notes.up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, "_add_supplier_notes.down.sql"))

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "Add Supplier Notes")

	_, err = os.Stat(mf.DownPath)
	require.NoError(t, err)
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	names, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, base := range []string{"000002_second", "000001_first"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, base+".up.sql"), []byte("--\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, base+".down.sql"), []byte("--\n"), 0644))
	}
	// Stray file that is not a migration pair.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644))

	names, err = ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_first", "000002_second"}, names)
}

func TestListMigrationsMissingDir(t *testing.T) {
	names, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Add users table":    "add_users_table",
		"add--users  table ": "add_users_table",
		"V2!":                "v2",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in))
	}
}
