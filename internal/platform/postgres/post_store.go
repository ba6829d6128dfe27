package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// It saves a new post to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the author or category doesn't exist
// (foreign key violation).
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		INSERT INTO posts (id, title, content, slug, author_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Content,
		post.Slug,
		post.AuthorID,
		post.CategoryID,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID.String()),
				slog.String("author_id", post.AuthorID.String()),
				slog.String("category_id", post.CategoryID.String()))
			return fmt.Errorf("%w: referenced author or category does not exist",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	log.Info("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", post.AuthorID.String()),
		slog.String("slug", post.Slug))
	return nil
}

// List implements store.PostStore.List
// It retrieves posts matching the filter, newest-first.
func (s *PostgresPostStore) List(ctx context.Context, filter store.PostFilter) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args, err := buildPostFilter(filter)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, content, slug, author_id, category_id, created_at, updated_at
		FROM posts
	` + where + fmt.Sprintf(`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// Count implements store.PostStore.Count
// It returns the number of posts matching the filter, ignoring its window.
func (s *PostgresPostStore) Count(ctx context.Context, filter store.PostFilter) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args, err := buildPostFilter(filter)
	if err != nil {
		return 0, err
	}

	var total int
	query := `SELECT COUNT(*) FROM posts` + where
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Error("failed to count posts", slog.String("error", err.Error()))
		return 0, err
	}

	return total, nil
}

// GetByID implements store.PostStore.GetByID
// An unparseable identifier is reported as store.ErrPostNotFound, identically
// to a missing row, so the identifier's internal shape never leaks to clients.
func (s *PostgresPostStore) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	postID, err := uuid.Parse(id)
	if err != nil {
		log.Debug("unparseable post id treated as not found", slog.String("post_id", id))
		return nil, store.ErrPostNotFound
	}

	query := `
		SELECT id, title, content, slug, author_id, category_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`
	row := s.db.QueryRowContext(ctx, query, postID)
	post, err := scanPost(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post",
			slog.String("error", err.Error()),
			slog.String("post_id", id))
		return nil, err
	}

	return post, nil
}

// Update implements store.PostStore.Update
// It applies the non-nil fields of update and returns the stored post.
// A post deleted between the caller's ownership check and this call surfaces
// as store.ErrPostNotFound; the ownership check is advisory, not atomic.
func (s *PostgresPostStore) Update(ctx context.Context, id string, update store.PostUpdate) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	postID, err := uuid.Parse(id)
	if err != nil {
		log.Debug("unparseable post id treated as not found", slog.String("post_id", id))
		return nil, store.ErrPostNotFound
	}

	set := []string{"updated_at = NOW()"}
	args := []any{}
	if update.Title != nil {
		args = append(args, *update.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if update.Content != nil {
		args = append(args, *update.Content)
		set = append(set, fmt.Sprintf("content = $%d", len(args)))
	}
	args = append(args, postID)

	query := fmt.Sprintf(`
		UPDATE posts
		SET %s
		WHERE id = $%d
		RETURNING id, title, content, slug, author_id, category_id, created_at, updated_at
	`, strings.Join(set, ", "), len(args))

	row := s.db.QueryRowContext(ctx, query, args...)
	post, err := scanPost(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", id))
		return nil, err
	}

	log.Info("post updated", slog.String("post_id", id))
	return post, nil
}

// Delete implements store.PostStore.Delete
// It removes a post by its identifier; the delete is permanent.
func (s *PostgresPostStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	postID, err := uuid.Parse(id)
	if err != nil {
		log.Debug("unparseable post id treated as not found", slog.String("post_id", id))
		return store.ErrPostNotFound
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrPostNotFound
	}

	log.Info("post deleted", slog.String("post_id", id))
	return nil
}

// buildPostFilter renders the WHERE clause for a post filter. An unparseable
// category identifier is a caller fault, not a "no results" case, and is
// surfaced as an error.
func buildPostFilter(filter store.PostFilter) (string, []any, error) {
	if filter.CategoryID == "" {
		return "", nil, nil
	}

	categoryID, err := uuid.Parse(filter.CategoryID)
	if err != nil {
		return "", nil, fmt.Errorf("invalid category filter %q: %w", filter.CategoryID, err)
	}

	return " WHERE category_id = $1", []any{categoryID}, nil
}

// scanPost reads one post row via the given scan function, which may come
// from either sql.Row or sql.Rows.
func scanPost(scan func(dest ...any) error) (*domain.Post, error) {
	var post domain.Post
	err := scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Slug,
		&post.AuthorID,
		&post.CategoryID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
