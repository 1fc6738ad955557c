package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mahesh-hegde/chitra/app/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "data.csv", "price,category,when\n10,A,2024-01-02\n20,,2024-01-03\n30,B,\n")
	d, err := ReadCSV(path, ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"price", "category", "when"}, d.Names())
	assert.Equal(t, 3, d.Rows())

	price, _ := d.Column("price")
	assert.Equal(t, dataset.KindNumeric, price.Kind())
	category, _ := d.Column("category")
	assert.Equal(t, dataset.KindText, category.Kind())
	assert.True(t, category.Missing(1))
	when, _ := d.Column("when")
	assert.Equal(t, dataset.KindDatetime, when.Kind())
	assert.True(t, when.Missing(2))
}

func TestReadCSV_TabSeparated(t *testing.T) {
	path := writeFile(t, "data.tsv", "a\tb\n1\tx\n")
	d, err := ReadCSV(path, '\t')
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, d.Names())
	assert.Equal(t, 1, d.Rows())
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"), ',')
	assert.Error(t, err)

	empty := writeFile(t, "empty.csv", "")
	_, err = ReadCSV(empty, ',')
	assert.ErrorContains(t, err, "header")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.xlsx", "c.txt", ".hidden.csv", "d.sqlite"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.csv", "b.xlsx", "d.sqlite"}, files)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("Data.CSV"))
	assert.True(t, Supported("/tmp/x.xlsx"))
	assert.False(t, Supported("notes.txt"))
}
