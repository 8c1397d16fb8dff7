package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AlumniJobForm_Backend/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func TestFormatToken(t *testing.T) {
	assert.Equal(t, "001", FormatToken(1))
	assert.Equal(t, "042", FormatToken(42))
	assert.Equal(t, "999", FormatToken(999))
	assert.Equal(t, "1000", FormatToken(1000))
}

func TestCreateForm_SequentialTokens(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var tokens []string
	for i := 0; i < 5; i++ {
		f := models.FormRecord{Name: "A", Email: "a@x.com"}
		require.NoError(t, s.CreateForm(ctx, &f))
		tokens = append(tokens, f.TokenNo)
	}
	assert.Equal(t, []string{"001", "002", "003", "004", "005"}, tokens)
}

func TestCreateForm_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := models.FormRecord{
		Name: "A", Email: "a@x.com", Contact: "123", Batch: "2019", Location: "Pune",
		Skillset: "go, sql", Company: "Acme", Experience: "3", CTC: "10", Message: "hi",
	}
	require.NoError(t, s.CreateForm(ctx, &in))

	got, err := s.GetForm(ctx, in.TokenNo)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Nil(t, got.Attachment)

	withFile := models.FormRecord{Name: "B", Email: "b@x.com", Attachment: strPtr("uploads/1-cv.pdf")}
	require.NoError(t, s.CreateForm(ctx, &withFile))
	got, err = s.GetForm(ctx, withFile.TokenNo)
	require.NoError(t, err)
	require.NotNil(t, got.Attachment)
	assert.Equal(t, "uploads/1-cv.pdf", *got.Attachment)
}

func TestCreateForm_ConcurrentTokensAreUnique(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	const n = 20
	tokens := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f := models.FormRecord{Name: "C", Email: "c@x.com"}
			if assert.NoError(t, s.CreateForm(ctx, &f)) {
				tokens <- f.TokenNo
			}
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[string]bool)
	for tok := range tokens {
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
	assert.Len(t, seen, n)
}

func TestCreateForm_TokensNotReusedAfterDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := models.FormRecord{Name: "A"}
	second := models.FormRecord{Name: "B"}
	require.NoError(t, s.CreateForm(ctx, &first))
	require.NoError(t, s.CreateForm(ctx, &second))

	_, err := s.DeleteForm(ctx, first.TokenNo)
	require.NoError(t, err)

	third := models.FormRecord{Name: "C"}
	require.NoError(t, s.CreateForm(ctx, &third))
	assert.Equal(t, "003", third.TokenNo)
}

func TestCreateForm_SkipsConflictingToken(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A row written behind the counter's back.
	_, err := s.db.Exec(`INSERT INTO forms(token_no, created_at, updated_at) VALUES('001', '', '')`)
	require.NoError(t, err)

	f := models.FormRecord{Name: "A"}
	require.NoError(t, s.CreateForm(ctx, &f))
	assert.Equal(t, "002", f.TokenNo)
}

func TestOpen_ContinuesExistingSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")
	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.db.Exec(`DELETE FROM counters`)
	require.NoError(t, err)
	_, err = s.db.Exec(`INSERT INTO forms(token_no, created_at, updated_at) VALUES('007', '', '')`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	f := models.FormRecord{Name: "A"}
	require.NoError(t, s.CreateForm(context.Background(), &f))
	assert.Equal(t, "008", f.TokenNo)
}

func TestGetForm_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetForm(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateForm_Partial(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	f := models.FormRecord{Name: "A", Email: "a@x.com", Company: "Acme"}
	require.NoError(t, s.CreateForm(ctx, &f))

	updated, err := s.UpdateForm(ctx, f.TokenNo, models.FormPatch{
		Company: strPtr("Globex"),
		CTC:     strPtr("12"),
	})
	require.NoError(t, err)
	assert.Equal(t, f.TokenNo, updated.TokenNo)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, "Globex", updated.Company)
	assert.Equal(t, "12", updated.CTC)
	assert.Nil(t, updated.Attachment)

	got, err := s.GetForm(ctx, f.TokenNo)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateForm_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.UpdateForm(context.Background(), "001", models.FormPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAttachment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	f := models.FormRecord{Name: "A"}
	require.NoError(t, s.CreateForm(ctx, &f))

	previous, err := s.SetAttachment(ctx, f.TokenNo, "uploads/1-a.pdf")
	require.NoError(t, err)
	assert.Nil(t, previous)

	previous, err = s.SetAttachment(ctx, f.TokenNo, "uploads/2-b.pdf")
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, "uploads/1-a.pdf", *previous)

	got, err := s.GetForm(ctx, f.TokenNo)
	require.NoError(t, err)
	assert.Equal(t, "uploads/2-b.pdf", *got.Attachment)

	_, err = s.SetAttachment(ctx, "999", "uploads/3-c.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteForm(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	f := models.FormRecord{Name: "A", Attachment: strPtr("uploads/1-a.pdf")}
	require.NoError(t, s.CreateForm(ctx, &f))

	deleted, err := s.DeleteForm(ctx, f.TokenNo)
	require.NoError(t, err)
	assert.Equal(t, "A", deleted.Name)
	assert.Equal(t, "uploads/1-a.pdf", *deleted.Attachment)

	_, err = s.GetForm(ctx, f.TokenNo)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.DeleteForm(ctx, f.TokenNo)
	assert.ErrorIs(t, err, ErrNotFound)
}
