// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomtom215/careercanvas/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PostgresStore persists everything in PostgreSQL through a pgx pool. Ids
// come from the table sequences.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgresStore connects, verifies the connection and applies the
// schema.
func OpenPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	s := NewPostgresStore(pool)
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the tables if they do not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const userColumns = `id, username, password_hash, name, email, role,
	saved_careers, liked_careers, quiz_completed, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		u            models.User
		saved, liked []int32
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email, &u.Role,
		&saved, &liked, &u.QuizCompleted, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.SavedCareers = toInts(saved)
	u.LikedCareers = toInts(liked)
	return &u, nil
}

func toInts(in []int32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// CreateUser implements UserStore.
func (s *PostgresStore) CreateUser(ctx context.Context, nu models.NewUser) (*models.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, name, email, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		nu.Username, nu.PasswordHash, nu.Name, nu.Email, roleOrDefault(nu.Role),
	))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, fmt.Errorf("%w: username %q", ErrConflict, nu.Username)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetUser implements UserStore.
func (s *PostgresStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	return u, nil
}

// GetUserByUsername implements UserStore.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	return u, nil
}

// UpdateCareerList implements UserStore.
func (s *PostgresStore) UpdateCareerList(ctx context.Context, userID int, list models.CareerList, careerID int, add bool) (*models.User, bool, error) {
	column := "saved_careers"
	if list == models.LikedCareers {
		column = "liked_careers"
	}

	// The WHERE clause makes the update a no-op when nothing would change,
	// so RowsAffected doubles as the changed flag.
	var query string
	if add {
		query = `UPDATE users SET ` + column + ` = array_append(` + column + `, $2)
			WHERE id = $1 AND NOT ($2 = ANY(` + column + `))`
	} else {
		query = `UPDATE users SET ` + column + ` = array_remove(` + column + `, $2)
			WHERE id = $1 AND $2 = ANY(` + column + `)`
	}
	tag, err := s.pool.Exec(ctx, query, userID, int32(careerID))
	if err != nil {
		return nil, false, fmt.Errorf("update %s list: %w", list, err)
	}
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return u, tag.RowsAffected() > 0, nil
}

const elementColumns = `id, user_id, career_id, element_type, element_value, created_at`

func scanElement(row pgx.Row) (*models.LikedElement, error) {
	var (
		e   models.LikedElement
		tag string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.CareerID, &tag, &e.ElementValue, &e.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if e.ElementType, err = models.ParseElementType(tag); err != nil {
		return nil, err
	}
	return &e, nil
}

// LikeElement implements PreferenceStore. The unique constraint decides
// between concurrent duplicates.
func (s *PostgresStore) LikeElement(ctx context.Context, key models.ElementKey) (*models.LikedElement, bool, error) {
	if err := key.Validate(); err != nil {
		return nil, false, err
	}
	e, err := scanElement(s.pool.QueryRow(ctx,
		`INSERT INTO liked_elements (user_id, career_id, element_type, element_value)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, career_id, element_type, element_value) DO NOTHING
		 RETURNING `+elementColumns,
		key.UserID, key.CareerID, key.ElementType.String(), key.ElementValue,
	))
	if err == nil {
		return e, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("like element: %w", err)
	}
	existing, err := s.GetLikedElement(ctx, key)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// UnlikeElement implements PreferenceStore.
func (s *PostgresStore) UnlikeElement(ctx context.Context, key models.ElementKey) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM liked_elements
		 WHERE user_id = $1 AND career_id = $2 AND element_type = $3 AND element_value = $4`,
		key.UserID, key.CareerID, key.ElementType.String(), key.ElementValue,
	)
	if err != nil {
		return false, fmt.Errorf("unlike element: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetLikedElement implements PreferenceStore.
func (s *PostgresStore) GetLikedElement(ctx context.Context, key models.ElementKey) (*models.LikedElement, error) {
	return scanElement(s.pool.QueryRow(ctx,
		`SELECT `+elementColumns+` FROM liked_elements
		 WHERE user_id = $1 AND career_id = $2 AND element_type = $3 AND element_value = $4`,
		key.UserID, key.CareerID, key.ElementType.String(), key.ElementValue,
	))
}

// ListLikedElements implements PreferenceStore.
func (s *PostgresStore) ListLikedElements(ctx context.Context, userID int) ([]models.LikedElement, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+elementColumns+` FROM liked_elements
		 WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked elements: %w", err)
	}
	defer rows.Close()

	out := make([]models.LikedElement, 0)
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan liked element: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// ListDirectlyLikedCareerIDs implements PreferenceStore.
func (s *PostgresStore) ListDirectlyLikedCareerIDs(ctx context.Context, userID int) ([]int, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT career_id FROM liked_elements WHERE user_id = $1
		 UNION
		 SELECT unnest(liked_careers) FROM users WHERE id = $1
		 ORDER BY 1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked career ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("scan liked career ids: %w", err)
	}
	return toInts(ids), nil
}

func scanQuiz(row pgx.Row) (*models.QuizResult, error) {
	var (
		r   models.QuizResult
		raw []byte
	)
	err := row.Scan(&r.ID, &r.UserID, &raw, &r.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &r.Answers); err != nil {
		return nil, fmt.Errorf("decode quiz answers: %w", err)
	}
	return &r, nil
}

// SaveQuizResult implements QuizStore.
func (s *PostgresStore) SaveQuizResult(ctx context.Context, userID int, answers models.QuizAnswers) (*models.QuizResult, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode quiz answers: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `UPDATE users SET quiz_completed = TRUE WHERE id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("mark quiz completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	r, err := scanQuiz(tx.QueryRow(ctx,
		`INSERT INTO quiz_results (user_id, answers) VALUES ($1, $2)
		 RETURNING id, user_id, answers, created_at`, userID, raw))
	if err != nil {
		return nil, fmt.Errorf("insert quiz result: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r, nil
}

// ListQuizResults implements QuizStore.
func (s *PostgresStore) ListQuizResults(ctx context.Context, userID int) ([]models.QuizResult, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, answers, created_at FROM quiz_results
		 WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	out := make([]models.QuizResult, 0)
	for rows.Next() {
		r, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// LatestQuizResult implements QuizStore.
func (s *PostgresStore) LatestQuizResult(ctx context.Context, userID int) (*models.QuizResult, error) {
	r, err := scanQuiz(s.pool.QueryRow(ctx,
		`SELECT id, user_id, answers, created_at FROM quiz_results
		 WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`, userID))
	if err != nil {
		return nil, fmt.Errorf("latest quiz result for user %d: %w", userID, err)
	}
	return r, nil
}

const conversationColumns = `id, user_id, messages, created_at, updated_at`

func scanConversation(row pgx.Row) (*models.Conversation, error) {
	var (
		c   models.Conversation
		raw []byte
	)
	err := row.Scan(&c.ID, &c.UserID, &raw, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &c.Messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return cloneConversation(&c), nil
}

// CreateConversation implements ConversationStore.
func (s *PostgresStore) CreateConversation(ctx context.Context, userID int, messages []models.Message) (*models.Conversation, error) {
	if messages == nil {
		messages = []models.Message{}
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("encode messages: %w", err)
	}
	c, err := scanConversation(s.pool.QueryRow(ctx,
		`INSERT INTO conversations (user_id, messages) VALUES ($1, $2)
		 RETURNING `+conversationColumns, userID, raw))
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return c, nil
}

// AppendMessages implements ConversationStore.
func (s *PostgresStore) AppendMessages(ctx context.Context, conversationID int64, messages ...models.Message) (*models.Conversation, error) {
	raw, err := json.Marshal(append([]models.Message{}, messages...))
	if err != nil {
		return nil, fmt.Errorf("encode messages: %w", err)
	}
	c, err := scanConversation(s.pool.QueryRow(ctx,
		`UPDATE conversations SET messages = messages || $2::jsonb, updated_at = $3
		 WHERE id = $1 RETURNING `+conversationColumns,
		conversationID, raw, time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("conversation %d: %w", conversationID, err)
	}
	return c, nil
}

// GetConversation implements ConversationStore.
func (s *PostgresStore) GetConversation(ctx context.Context, id int64) (*models.Conversation, error) {
	c, err := scanConversation(s.pool.QueryRow(ctx,
		`SELECT `+conversationColumns+` FROM conversations WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("conversation %d: %w", id, err)
	}
	return c, nil
}

// ListConversations implements ConversationStore.
func (s *PostgresStore) ListConversations(ctx context.Context, userID int) ([]models.Conversation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+conversationColumns+` FROM conversations
		 WHERE user_id = $1 ORDER BY updated_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	out := make([]models.Conversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Ping checks the connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
