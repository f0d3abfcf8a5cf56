package manga

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) List(ctx context.Context, sort SortOption) ([]Manga, error) {
	orderBy := "m.rating DESC"
	switch sort {
	case SortPriceAsc:
		orderBy = "m.price ASC"
	case SortPriceDesc:
		orderBy = "m.price DESC"
	case SortTitle:
		orderBy = "m.title ASC"
	}

	dataSQL := fmt.Sprintf(`
		SELECT m.id, m.title, m.author, m.price, m.rating, m.cover_url, m.stock, m.slug,
		       m.description, m.publisher, m.release_date, m.format, m.pages, m.language, m.isbn,
		       c.name,
		       COALESCE(array_agg(g.name ORDER BY g.name) FILTER (WHERE g.name IS NOT NULL), '{}')
		FROM mangas m
		JOIN categories c ON c.id = m.category_id
		LEFT JOIN manga_genres mg ON mg.manga_id = m.id
		LEFT JOIN genres g ON g.id = mg.genre_id
		GROUP BY m.id, c.name
		ORDER BY %s`, orderBy)

	rows, err := r.db.Query(ctx, dataSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Manga
	for rows.Next() {
		m, err := scanManga(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetBySlug(ctx context.Context, slug string) (Manga, error) {
	const query = `
		SELECT m.id, m.title, m.author, m.price, m.rating, m.cover_url, m.stock, m.slug,
		       m.description, m.publisher, m.release_date, m.format, m.pages, m.language, m.isbn,
		       c.name,
		       COALESCE(array_agg(g.name ORDER BY g.name) FILTER (WHERE g.name IS NOT NULL), '{}')
		FROM mangas m
		JOIN categories c ON c.id = m.category_id
		LEFT JOIN manga_genres mg ON mg.manga_id = m.id
		LEFT JOIN genres g ON g.id = mg.genre_id
		WHERE m.slug = $1
		GROUP BY m.id, c.name`

	row := r.db.QueryRow(ctx, query, slug)
	m, err := scanManga(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Manga{}, ErrNotFound
		}
		return Manga{}, err
	}

	reviews, err := r.listReviews(ctx, m.ID)
	if err != nil {
		return Manga{}, err
	}
	m.Reviews = reviews
	return m, nil
}

func scanManga(row pgx.Row) (Manga, error) {
	var m Manga
	var description, publisher, releaseDate, format, language, isbn *string
	var pages *int

	err := row.Scan(
		&m.ID, &m.Title, &m.Author, &m.Price, &m.Rating, &m.Cover, &m.Stock, &m.Slug,
		&description, &publisher, &releaseDate, &format, &pages, &language, &isbn,
		&m.Category, &m.Genres,
	)
	if err != nil {
		return Manga{}, err
	}

	m.Description = orDefault(description, "Aucune description disponible")
	m.Publisher = orDefault(publisher, "")
	m.ReleaseDate = orDefault(releaseDate, "")
	m.Specifications = Specifications{
		Format:   orDefault(format, "Non spécifié"),
		Language: orDefault(language, "Non spécifié"),
		ISBN:     orDefault(isbn, "Non spécifié"),
	}
	if pages != nil {
		m.Specifications.Pages = *pages
	}
	return m, nil
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

func (r *PostgresRepo) listReviews(ctx context.Context, mangaID string) ([]Review, error) {
	const query = `
		SELECT id, user_id, rating, comment, created_at
		FROM reviews
		WHERE manga_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, mangaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var review Review
		var userID string
		var comment *string
		if err := rows.Scan(&review.ID, &userID, &review.Rating, &comment, &review.Date); err != nil {
			return nil, err
		}
		review.Author = reviewAlias(userID)
		review.Avatar = "/default-avatar.png"
		if comment != nil {
			review.Comment = *comment
		}
		out = append(out, review)
	}
	return out, rows.Err()
}

// reviewAlias hides the reviewer behind a short id prefix.
func reviewAlias(userID string) string {
	if len(userID) > 8 {
		userID = userID[:8]
	}
	return "Utilisateur #" + userID
}
