package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/search"
)

func runScript(t *testing.T, cat *catalog.Catalog, script string, opts ...Option) string {
	t.Helper()

	var out bytes.Buffer
	m := New(cat, search.NewService(cat, nil), strings.NewReader(script), &out, opts...)
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func seededCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat := catalog.New("Campus", nil)
	book, err := domain.NewBook("B-1", "Clean Code", 2008, "Robert C. Martin", "9780132350884", 464)
	require.NoError(t, err)
	cat.Add(book)
	return cat
}

func TestRun_Session(t *testing.T) {
	cat := catalog.New("Campus", nil)
	script := strings.Join([]string{
		"7", "1", "B-1", "Clean Code", "2008", "Robert C. Martin", "9780132350884", "464",
		"3", "clean",
		"5", "B-1",
		"5", "B-1",
		"8",
		"0",
	}, "\n") + "\n"

	out := runScript(t, cat, script)

	assert.Contains(t, out, "LIBRARY MANAGEMENT SYSTEM - Campus")
	assert.Contains(t, out, "Item 'Clean Code' added to the catalog")
	assert.Contains(t, out, "Search results: 'clean'")
	assert.Contains(t, out, "Author : Robert C. Martin")
	assert.Contains(t, out, "'Clean Code' borrowed")
	assert.Contains(t, out, "'Clean Code' is currently unavailable")
	assert.Contains(t, out, "Total items:     1")
	assert.Contains(t, out, "Borrowed items:  1")
	assert.Contains(t, out, "  - Book: 1")
	assert.Contains(t, out, "Thank you for using Campus!")
	assert.Equal(t, 1, cat.Len())
}

func TestRun_EmptyListings(t *testing.T) {
	out := runScript(t, catalog.New("Campus", nil), "1\n2\n0\n")

	assert.Contains(t, out, "The catalog is empty.")
	assert.Contains(t, out, "No items are available right now.")
}

func TestRun_NoneAvailable(t *testing.T) {
	cat := seededCatalog(t)
	cat.Borrow("B-1")

	out := runScript(t, cat, "2\n1\n0\n")
	assert.Contains(t, out, "No items are available right now.")
	assert.Contains(t, out, "Items in Campus")
	assert.Contains(t, out, "Status : Borrowed")
}

func TestRun_AddRepromptsNumbers(t *testing.T) {
	cat := catalog.New("Campus", nil)
	script := "7\n3\n\nThe Matrix\nnineteen\n1999\nWachowskis\nlong\n136\n0\n"

	out := runScript(t, cat, script)

	assert.Contains(t, out, "'nineteen' is not a number, please try again.")
	assert.Contains(t, out, "'long' is not a number, please try again.")
	assert.Contains(t, out, "Using ID D-001")
	assert.Contains(t, out, "Item 'The Matrix' added to the catalog")

	item, ok := cat.SearchByID("D-001")
	require.True(t, ok)
	assert.Equal(t, 1999, item.Year())
	assert.Equal(t, 136, item.(*domain.DVD).Minutes())
}

func TestRun_AddRejectedKeepsGeneratedID(t *testing.T) {
	cat := catalog.New("Campus", nil)
	script := strings.Join([]string{
		"7", "1", "", "", "2008", "Robert C. Martin", "9780132350884", "464",
		"7", "1", "", "Clean Code", "2008", "Robert C. Martin", "9780132350884", "464",
		"0",
	}, "\n") + "\n"

	out := runScript(t, cat, script)

	assert.Contains(t, out, "Error: invalid title")
	assert.Equal(t, 2, strings.Count(out, "Using ID B-001"))
	assert.NotContains(t, out, "B-002")

	item, ok := cat.SearchByID("B-001")
	require.True(t, ok)
	assert.Equal(t, "Clean Code", item.Title())
	assert.Equal(t, 1, cat.Len())
}

func TestRun_AddMagazine(t *testing.T) {
	cat := catalog.New("Campus", nil)
	out := runScript(t, cat, "7\n2\nM-1\nWired\n2023\nConde Nast\n31.07\nJuly\n0\n")

	assert.Contains(t, out, "Item 'Wired' added to the catalog")
	item, ok := cat.SearchByID("M-1")
	require.True(t, ok)
	assert.Equal(t, "31.07", item.(*domain.Magazine).Issue())
}

func TestRun_AddRejectsEmptyTitle(t *testing.T) {
	cat := catalog.New("Campus", nil)
	out := runScript(t, cat, "7\n1\nB-1\n\n2008\nA\nI\n10\n0\n")

	assert.Contains(t, out, "Error: invalid title: must not be empty")
	assert.Equal(t, 0, cat.Len())
}

func TestRun_AddInvalidType(t *testing.T) {
	cat := catalog.New("Campus", nil)
	out := runScript(t, cat, "7\n4\n0\n")

	assert.Contains(t, out, "Invalid type!")
	assert.Equal(t, 0, cat.Len())
}

func TestRun_InvalidChoice(t *testing.T) {
	out := runScript(t, catalog.New("Campus", nil), "42\n0\n")
	assert.Contains(t, out, "Invalid choice, please try again.")
}

func TestRun_EOFEndsCleanly(t *testing.T) {
	out := runScript(t, seededCatalog(t), "1")
	assert.Contains(t, out, "Title  : Clean Code")
	assert.NotContains(t, out, "Thank you")
}

func TestRun_EOFInsideForm(t *testing.T) {
	cat := catalog.New("Campus", nil)
	runScript(t, cat, "7\n1\nB-1\nClean Code\n")
	assert.Equal(t, 0, cat.Len())
}

func TestRun_SearchSuggestions(t *testing.T) {
	out := runScript(t, seededCatalog(t), "3\nclen\n0\n")

	assert.Contains(t, out, "No item found with title 'clen'")
	assert.Contains(t, out, "Did you mean:")
	assert.Contains(t, out, "(ID: B-1)")
}

func TestRun_SearchByID(t *testing.T) {
	out := runScript(t, seededCatalog(t), "4\nB-1\n4\nzz\n0\n")

	assert.Contains(t, out, "Item found (ID: B-1)")
	assert.Contains(t, out, "No item with ID 'zz'")
}

func TestRun_ReturnAndNotFound(t *testing.T) {
	cat := seededCatalog(t)
	cat.Borrow("B-1")

	out := runScript(t, cat, "6\nB-1\n5\nnope\n0\n")
	assert.Contains(t, out, "'Clean Code' returned")
	assert.Contains(t, out, "No item with ID 'nope'")

	item, _ := cat.SearchByID("B-1")
	assert.True(t, item.Available())
}

func TestRun_RenameAndCreator(t *testing.T) {
	cat := seededCatalog(t)
	out := runScript(t, cat, "10\nB-1\n\n10\nB-1\nClean Code 2e\n9\nmartin\n9\ntolkien\n0\n")

	assert.Contains(t, out, "Error: invalid title: must not be empty")
	assert.Contains(t, out, "Title changed to 'Clean Code 2e'")
	assert.Contains(t, out, "Items by 'martin'")
	assert.Contains(t, out, "No item found by 'tolkien'")
	assert.Len(t, cat.SearchByTitle("2e"), 1)
}

func TestRun_IndonesianLocale(t *testing.T) {
	out := runScript(t, seededCatalog(t), "5\nB-1\n1\n8\n0\n", WithLocale(domain.LocaleIndonesian))

	assert.Contains(t, out, "Clean Code berhasil dipinjam")
	assert.Contains(t, out, "Status  : Dipinjam")
	assert.Contains(t, out, "  - Buku: 1")
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	m := New(catalog.New("Campus", nil), nil, strings.NewReader("1\n"), &out)
	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
}

func TestRun_NilSearchService(t *testing.T) {
	var out bytes.Buffer
	m := New(seededCatalog(t), nil, strings.NewReader("3\nzzz\n9\n0\n"), &out)
	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "No item found with title 'zzz'")
	assert.NotContains(t, out.String(), "Did you mean")
	assert.Contains(t, out.String(), "Creator search is not available.")
}
