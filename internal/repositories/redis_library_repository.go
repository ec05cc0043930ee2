package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"claims-assistant/internal/models"

	"github.com/redis/go-redis/v9"
)

// DefaultLibraryKeyPrefix namespaces the library keys
const DefaultLibraryKeyPrefix = "claims-assistant:library"

// RedisLibraryRepository implements LibraryRepository using Redis.
//
// Key layout:
//
//	<prefix>:files        list of file IDs, oldest first
//	<prefix>:file:<id>    file JSON
//	<prefix>:prompts      list of prompt IDs, newest first
//	<prefix>:prompt:<id>  prompt JSON
type RedisLibraryRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisLibraryRepository creates a new Redis-based library repository
func NewRedisLibraryRepository(client *redis.Client, prefix string) *RedisLibraryRepository {
	if prefix == "" {
		prefix = DefaultLibraryKeyPrefix
	}
	return &RedisLibraryRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisLibraryRepository) filesKey() string {
	return r.prefix + ":files"
}

func (r *RedisLibraryRepository) fileKey(id string) string {
	return r.prefix + ":file:" + id
}

func (r *RedisLibraryRepository) promptsKey() string {
	return r.prefix + ":prompts"
}

func (r *RedisLibraryRepository) promptKey(id string) string {
	return r.prefix + ":prompt:" + id
}

// AddFile stores a file reference unless one with the same ID exists
func (r *RedisLibraryRepository) AddFile(ctx context.Context, file models.LibraryFile) (models.LibraryFile, bool, error) {
	fileJSON, err := json.Marshal(file)
	if err != nil {
		return models.LibraryFile{}, false, NewRepositoryError("add_file", file.ID, err, "failed to marshal file")
	}

	// SETNX claims the ID; the list is only extended by the winner
	created, err := r.client.SetNX(ctx, r.fileKey(file.ID), fileJSON, 0).Result()
	if err != nil {
		return models.LibraryFile{}, false, NewRepositoryError("add_file", file.ID, err, "")
	}
	if !created {
		existing, err := r.getFile(ctx, file.ID)
		if err != nil {
			return models.LibraryFile{}, false, err
		}
		return existing, false, nil
	}

	if err := r.client.RPush(ctx, r.filesKey(), file.ID).Err(); err != nil {
		// release the ID so a retry is not answered with an unlisted record
		if delErr := r.client.Del(ctx, r.fileKey(file.ID)).Err(); delErr != nil {
			err = errors.Join(err, delErr)
		}
		return models.LibraryFile{}, false, NewRepositoryError("add_file", file.ID, err, "failed to index file")
	}
	return file, true, nil
}

func (r *RedisLibraryRepository) getFile(ctx context.Context, fileID string) (models.LibraryFile, error) {
	fileJSON, err := r.client.Get(ctx, r.fileKey(fileID)).Result()
	if err == redis.Nil {
		return models.LibraryFile{}, LibraryFileNotFoundError(fileID)
	}
	if err != nil {
		return models.LibraryFile{}, NewRepositoryError("get_file", fileID, err, "")
	}

	var file models.LibraryFile
	if err := json.Unmarshal([]byte(fileJSON), &file); err != nil {
		return models.LibraryFile{}, NewRepositoryError("get_file", fileID, err, "failed to unmarshal file")
	}
	return file, nil
}

// RemoveFile deletes a file reference; unknown IDs are ignored
func (r *RedisLibraryRepository) RemoveFile(ctx context.Context, fileID string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.fileKey(fileID))
	pipe.LRem(ctx, r.filesKey(), 0, fileID)

	if _, err := pipe.Exec(ctx); err != nil {
		return NewRepositoryError("remove_file", fileID, err, "failed to execute transaction")
	}
	return nil
}

// ListFiles returns the stored files oldest first
func (r *RedisLibraryRepository) ListFiles(ctx context.Context) ([]models.LibraryFile, error) {
	ids, err := r.client.LRange(ctx, r.filesKey(), 0, -1).Result()
	if err != nil {
		return nil, NewRepositoryError("list_files", "", err, "")
	}

	files := make([]models.LibraryFile, 0, len(ids))
	err = r.loadBatch(ctx, "list_files", ids, r.fileKey, func(raw []byte) error {
		var file models.LibraryFile
		if err := json.Unmarshal(raw, &file); err != nil {
			return err
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// AddPrompt stores a prompt ahead of the existing ones
func (r *RedisLibraryRepository) AddPrompt(ctx context.Context, prompt models.SavedPrompt) error {
	promptJSON, err := json.Marshal(prompt)
	if err != nil {
		return NewRepositoryError("add_prompt", prompt.ID, err, "failed to marshal prompt")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.promptKey(prompt.ID), promptJSON, 0)
	pipe.LPush(ctx, r.promptsKey(), prompt.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return NewRepositoryError("add_prompt", prompt.ID, err, "failed to execute transaction")
	}
	return nil
}

// RemovePrompt deletes a prompt; unknown IDs are ignored
func (r *RedisLibraryRepository) RemovePrompt(ctx context.Context, promptID string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.promptKey(promptID))
	pipe.LRem(ctx, r.promptsKey(), 0, promptID)

	if _, err := pipe.Exec(ctx); err != nil {
		return NewRepositoryError("remove_prompt", promptID, err, "failed to execute transaction")
	}
	return nil
}

// ListPrompts returns the stored prompts newest first
func (r *RedisLibraryRepository) ListPrompts(ctx context.Context) ([]models.SavedPrompt, error) {
	ids, err := r.client.LRange(ctx, r.promptsKey(), 0, -1).Result()
	if err != nil {
		return nil, NewRepositoryError("list_prompts", "", err, "")
	}

	prompts := make([]models.SavedPrompt, 0, len(ids))
	err = r.loadBatch(ctx, "list_prompts", ids, r.promptKey, func(raw []byte) error {
		var prompt models.SavedPrompt
		if err := json.Unmarshal(raw, &prompt); err != nil {
			return err
		}
		prompts = append(prompts, prompt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

// loadBatch fetches the records behind ids in one pipeline, skipping
// IDs whose record has gone missing
func (r *RedisLibraryRepository) loadBatch(ctx context.Context, op string, ids []string, key func(string) string, decode func([]byte) error) error {
	if len(ids) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, key(id))
	}

	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return NewRepositoryError(op, "", err, "failed to execute batch get")
	}

	for i, cmd := range cmds {
		raw, err := cmd.Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return NewRepositoryError(op, ids[i], err, "")
		}
		if err := decode(raw); err != nil {
			return NewRepositoryError(op, ids[i], err, "failed to unmarshal record")
		}
	}
	return nil
}

// Ping checks if Redis is reachable
func (r *RedisLibraryRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client
func (r *RedisLibraryRepository) Close() error {
	return r.client.Close()
}
