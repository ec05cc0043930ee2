package repositories

import (
	"context"
	"testing"

	"claims-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLibraryRepository_Files(t *testing.T) {
	repo := NewMemoryLibraryRepository()
	ctx := context.Background()

	stored, added, err := repo.AddFile(ctx, models.LibraryFile{ID: "file-1", Name: "a.pdf"})
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "a.pdf", stored.Name)

	stored, added, err = repo.AddFile(ctx, models.LibraryFile{ID: "file-1", Name: "b.pdf"})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, "a.pdf", stored.Name)

	_, _, err = repo.AddFile(ctx, models.LibraryFile{ID: "file-2", Name: "c.pdf"})
	require.NoError(t, err)

	files, err := repo.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "file-1", files[0].ID)

	// Mutating the snapshot does not leak into the repository
	files[0].Name = "changed"
	again, _ := repo.ListFiles(ctx)
	assert.Equal(t, "a.pdf", again[0].Name)

	require.NoError(t, repo.RemoveFile(ctx, "file-1"))
	require.NoError(t, repo.RemoveFile(ctx, "unknown"))
	files, _ = repo.ListFiles(ctx)
	require.Len(t, files, 1)
	assert.Equal(t, "file-2", files[0].ID)
}

func TestMemoryLibraryRepository_Prompts(t *testing.T) {
	repo := NewMemoryLibraryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddPrompt(ctx, models.SavedPrompt{ID: "p1", Body: "one"}))
	require.NoError(t, repo.AddPrompt(ctx, models.SavedPrompt{ID: "p2", Body: "two"}))
	require.NoError(t, repo.AddPrompt(ctx, models.SavedPrompt{ID: "p3", Body: "three"}))

	prompts, err := repo.ListPrompts(ctx)
	require.NoError(t, err)
	require.Len(t, prompts, 3)
	assert.Equal(t, []string{"p3", "p2", "p1"}, []string{prompts[0].ID, prompts[1].ID, prompts[2].ID})

	require.NoError(t, repo.RemovePrompt(ctx, "p2"))
	prompts, _ = repo.ListPrompts(ctx)
	assert.Len(t, prompts, 2)

	assert.NoError(t, repo.Ping(ctx))
	assert.NoError(t, repo.Close())
}
