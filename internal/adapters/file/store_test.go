package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscreenhq/greenscreen/internal/adapters/file"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

func testDefinition() *domain.ScreenDefinition {
	return &domain.ScreenDefinition{
		Name:        "add-customer",
		Description: "Add a customer record",
		Option:      "80",
		Fields: []domain.FieldConfig{
			{Name: "customer_id", MaxLength: 4, Required: true, Kind: domain.FieldDigits, TabsFilled: 1, TabsEmpty: 1},
			{Name: "status", MaxLength: 1, Kind: domain.FieldText, ValidValues: []string{"A", "I"}, TabsFilled: 1, TabsEmpty: 1},
		},
		Steps: []domain.NavigationStep{
			{Order: 1, Action: domain.ActionCommand, Value: "80", Wait: 2 * time.Second},
			{Order: 2, Action: domain.ActionFormFill, ScreenContains: "ADD CUSTOMER"},
		},
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDefinition()))

	got, err := store.Get(ctx, "add-customer")
	require.NoError(t, err)
	assert.Equal(t, testDefinition(), got)
}

func TestStore_GetMissing(t *testing.T) {
	store := file.New(t.TempDir())

	_, err := store.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrScreenNotFound))
}

func TestStore_Delete(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDefinition()))
	require.NoError(t, store.Delete(ctx, "add-customer"))

	_, err := store.Get(ctx, "add-customer")
	assert.True(t, errors.Is(err, domain.ErrScreenNotFound))

	// Deleting a missing screen is not an error.
	assert.NoError(t, store.Delete(ctx, "add-customer"))
}

func TestStore_List(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	def := testDefinition()
	require.NoError(t, store.Save(ctx, def))
	def.Name = "update-customer"
	require.NoError(t, store.Save(ctx, def))

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"add-customer", "update-customer"}, names)
}

func TestStore_RejectsPathTraversal(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	_, err := store.Get(ctx, "../etc/passwd")
	assert.Error(t, err)

	def := testDefinition()
	def.Name = "a/b"
	assert.Error(t, store.Save(ctx, def))
}

// Saved documents keep durations as human-editable strings.
func TestStore_SavesDurationsAsStrings(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	require.NoError(t, store.Save(context.Background(), testDefinition()))

	data, err := os.ReadFile(filepath.Join(dir, "add-customer.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "wait: 2s")
}

func TestDecode(t *testing.T) {
	doc := []byte(`
name: add-customer
fields:
  - name: customer_id
    max_length: 4
    required: true
    kind: digits
    tabs_filled: 1
    tabs_empty: 1
steps:
  - order: 1
    action: command
    value: "80"
    wait: 2s
  - order: 2
    action: form_fill
    screen_contains: ADD CUSTOMER
`)
	def, err := file.Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, "add-customer", def.Name)
	require.Len(t, def.Fields, 1)
	assert.Equal(t, domain.FieldDigits, def.Fields[0].Kind)
	require.Len(t, def.Steps, 2)
	assert.Equal(t, 2*time.Second, def.Steps[0].Wait)
	assert.Equal(t, domain.ActionFormFill, def.Steps[1].Action)
}

func TestDecode_RequiresName(t *testing.T) {
	_, err := file.Decode([]byte(`description: nameless`))
	assert.Error(t, err)
}
