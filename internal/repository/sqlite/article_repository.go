package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

const createArticlesTable = `
CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	cover_img TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL,
	category_id INTEGER NOT NULL,
	create_user INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY(category_id) REFERENCES categories(id) ON DELETE RESTRICT,
	FOREIGN KEY(create_user) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_articles_create_user ON articles(create_user);
CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id);
`

const articleColumns = `id, title, content, cover_img, state, category_id, create_user, created_at, updated_at`

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createArticlesTable); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) (int64, error) {
	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO articles (title, content, cover_img, state, category_id, create_user, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		article.Title,
		article.Content,
		article.CoverImg,
		string(article.State),
		article.CategoryID,
		article.OwnerID,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return 0, classify(err, "insert article")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("article last insert id: %w", err)
	}
	article.ID = id
	return id, nil
}

func (r *ArticleRepository) Get(ctx context.Context, ownerID, id int64) (*domain.Article, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+articleColumns+`
FROM articles
WHERE id=? AND create_user=?`,
		id,
		ownerID,
	)
	return scanArticle(row)
}

func (r *ArticleRepository) List(ctx context.Context, ownerID int64, filter domain.ArticleFilter, limit, offset int) ([]domain.Article, int64, error) {
	conditions := []string{"create_user=?"}
	args := []any{ownerID}
	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id=?")
		args = append(args, *filter.CategoryID)
	}
	if filter.State != nil {
		conditions = append(conditions, "state=?")
		args = append(args, string(*filter.State))
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE %s
ORDER BY id DESC
LIMIT ? OFFSET ?`, articleColumns, where)

	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, total, nil
}

func (r *ArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	article.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE articles
SET title=?, content=?, cover_img=?, state=?, category_id=?, updated_at=?
WHERE id=? AND create_user=?`,
		article.Title,
		article.Content,
		article.CoverImg,
		string(article.State),
		article.CategoryID,
		article.UpdatedAt,
		article.ID,
		article.OwnerID,
	)
	if err != nil {
		return classify(err, "update article")
	}
	return checkAffected(res, "update article")
}

func (r *ArticleRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id=? AND create_user=?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return checkAffected(res, "delete article")
}

func scanArticle(scanner interface {
	Scan(dest ...any) error
}) (*domain.Article, error) {
	var (
		article domain.Article
		state   string
	)
	if err := scanner.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.CoverImg,
		&state,
		&article.CategoryID,
		&article.OwnerID,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan article: %w", err)
	}
	article.State = domain.ArticleState(state)
	return &article, nil
}
