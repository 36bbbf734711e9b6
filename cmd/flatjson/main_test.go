package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/ehsanranjbar/flatjson/dbformat"
	"github.com/ehsanranjbar/flatjson/flatten"
	"github.com/ehsanranjbar/flatjson/iters"
	"github.com/ehsanranjbar/flatjson/store"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func decodeOutput(t *testing.T, out string) *dbformat.Record {
	t.Helper()

	body, ok := strings.CutPrefix(out, "Flattened Structure:\n")
	require.True(t, ok, out)

	var rec dbformat.Record
	require.NoError(t, json.NewDecoder(strings.NewReader(body)).Decode(&rec))
	return &rec
}

func TestSample(t *testing.T) {
	out, err := runCLI(t, "")
	require.NoError(t, err)

	rec := decodeOutput(t, out)
	require.Equal(t, []string{
		"id",
		"user_name",
		"user_address_street",
		"user_address_city",
		"user_address_country_code",
		"user_address_country_name",
		"user_orders_0_orderId",
		"user_orders_0_items_0_product",
		"user_orders_0_items_0_price",
		"user_orders_0_items_1_product",
		"user_orders_0_items_1_price",
	}, rec.Headers)
	require.Equal(t, []string{
		"1",
		"'John Doe'",
		"'123 Main St'",
		"'Boston'",
		"'US'",
		"'United States'",
		"'A1'",
		"'Book'",
		"29.99",
		"'Pen'",
		"5.99",
	}, rec.Values)
	require.Equal(t, strings.Join(rec.Headers, ","), rec.HeaderString)
	require.Contains(t, out, "\n  \"headers\": [\n")
}

func TestStdinAndTable(t *testing.T) {
	out, err := runCLI(t, `{"name": "O'Brien", "id": 1, "tags": [], "nick": null}`,
		"-in", "-", "-table", "people", "-ignore-null")
	require.NoError(t, err)

	require.Contains(t, out, "INSERT INTO people (name,id,tags) VALUES ('O''Brien',1,'[]')\n")
}

func TestRoot(t *testing.T) {
	out, err := runCLI(t, "", "-root", "user.address")
	require.NoError(t, err)

	rec := decodeOutput(t, out)
	require.Equal(t, []string{"street", "city", "country_code", "country_name"}, rec.Headers)

	_, err = runCLI(t, "", "-root", "user.missing")
	require.Error(t, err)
}

func TestFileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"m": [[1, 2], 3]}`), 0o600))

	out, err := runCLI(t, "", "-in", path)
	require.NoError(t, err)
	require.Equal(t, []string{"m_1"}, decodeOutput(t, out).Headers)

	out, err = runCLI(t, "", "-in", path, "-nested-arrays")
	require.NoError(t, err)
	require.Equal(t, []string{"m_0_0", "m_0_1", "m_1"}, decodeOutput(t, out).Headers)
}

func TestErrors(t *testing.T) {
	_, err := runCLI(t, "", "-max-depth", "2")
	require.ErrorIs(t, err, flatten.ErrDepthExceeded)

	_, err = runCLI(t, `{"a": `, "-in", "-")
	require.Error(t, err)

	_, err = runCLI(t, "", "-in", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = runCLI(t, "", "-unknown")
	require.Error(t, err)
}

func TestStage(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "", "-db", dir)
	require.NoError(t, err)
	_, err = runCLI(t, `{"user": {"address": {"city": "Paris"}}}`, "-db", dir, "-in", "-")
	require.NoError(t, err)

	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	require.NoError(t, err)
	defer db.Close()

	err = db.View(func(txn *badger.Txn) error {
		ins := store.New([]byte("rows")).Instantiate(txn)
		require.Equal(t, uint(2), iters.ConsumeAndCount(ins.NewIterator()))

		it, err := ins.Query(`user_address_city = "Boston"`)
		require.NoError(t, err)
		rows, err := iters.Collect(it)
		it.Close()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, uint64(1), rows[0].Id)
		return nil
	})
	require.NoError(t, err)
}
