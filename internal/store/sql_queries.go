package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/ndanilchenko/go-skill-market/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createProduct = `INSERT INTO products (name, description, price, category, stock, image)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING product_id, name, description, price, category, stock, image, created_at, updated_at;`

	getProduct = `SELECT product_id, name, description, price, category, stock, image, created_at, updated_at
    FROM products
    WHERE product_id = $1;`

	listProducts = `SELECT product_id, name, description, price, category, stock, image, created_at, updated_at
    FROM products
    ORDER BY created_at DESC;`

	deleteProduct = `DELETE FROM products WHERE product_id = $1;`

	createTutorial = `WITH inserted AS (
        INSERT INTO tutorials (title, description, content, video_url, duration, category, level, image, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING tutorial_id, title, description, content, video_url, duration, category, level, image, created_by, created_at, updated_at
    )
    SELECT i.tutorial_id, i.title, i.description, i.content, i.video_url, i.duration, i.category, i.level, i.image, i.created_by, u.name, i.created_at, i.updated_at
    FROM inserted i
    JOIN users u ON u.user_id = i.created_by;`

	getTutorial = `SELECT t.tutorial_id, t.title, t.description, t.content, t.video_url, t.duration, t.category, t.level, t.image, t.created_by, u.name, t.created_at, t.updated_at
    FROM tutorials t
    JOIN users u ON u.user_id = t.created_by
    WHERE t.tutorial_id = $1;`

	listTutorials = `SELECT t.tutorial_id, t.title, t.description, t.content, t.video_url, t.duration, t.category, t.level, t.image, t.created_by, u.name, t.created_at, t.updated_at
    FROM tutorials t
    JOIN users u ON u.user_id = t.created_by
    ORDER BY t.created_at DESC;`

	deleteTutorial = `DELETE FROM tutorials WHERE tutorial_id = $1;`
)

// buildProductUpdateQuery builds a partial UPDATE for the products table
// containing only the fields present in update. Returns ErrEmptyUpdate if
// no field is set.
func buildProductUpdateQuery(productID int64, update models.ProductUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrEmptyUpdate
	}

	builder := sq.Update("products").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"product_id": productID})

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Stock != nil {
		builder = builder.Set("stock", *update.Stock)
	}
	if update.Image != nil {
		builder = builder.Set("image", *update.Image)
	}

	return builder.ToSql()
}

// buildTutorialUpdateQuery builds a partial UPDATE for the tutorials table
// containing only the fields present in update. The created_by column is
// never part of the SET list: ownership is immutable.
func buildTutorialUpdateQuery(tutorialID int64, update models.TutorialUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrEmptyUpdate
	}

	builder := sq.Update("tutorials").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"tutorial_id": tutorialID})

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.VideoURL != nil {
		builder = builder.Set("video_url", *update.VideoURL)
	}
	if update.Duration != nil {
		builder = builder.Set("duration", *update.Duration)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Level != nil {
		builder = builder.Set("level", *update.Level)
	}
	if update.Image != nil {
		builder = builder.Set("image", *update.Image)
	}

	return builder.ToSql()
}
