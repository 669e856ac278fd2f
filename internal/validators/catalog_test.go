package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndanilchenko/go-skill-market/models"
)

func validProduct() models.Product {
	return models.Product{
		Name:        "Laptop Stand",
		Description: "Aluminium",
		Price:       39.5,
		Category:    "accessories",
		Stock:       12,
	}
}

func validTutorial() models.Tutorial {
	return models.Tutorial{
		Title:       "Go Concurrency",
		Description: "Channels in depth",
		Content:     "...",
		Category:    "go",
		Duration:    45,
		Level:       models.LevelIntermediate,
	}
}

func TestCatalogValidator_Product(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, validProduct()))
	})

	t.Run("pointer value", func(t *testing.T) {
		p := validProduct()
		assert.NoError(t, v.Validate(ctx, &p))
	})

	t.Run("empty name", func(t *testing.T) {
		p := validProduct()
		p.Name = ""
		assert.ErrorIs(t, v.Validate(ctx, p), ErrEmptyName)
	})

	t.Run("empty description", func(t *testing.T) {
		p := validProduct()
		p.Description = ""
		assert.ErrorIs(t, v.Validate(ctx, p), ErrEmptyDescription)
	})

	t.Run("negative price", func(t *testing.T) {
		p := validProduct()
		p.Price = -1
		assert.ErrorIs(t, v.Validate(ctx, p), ErrNegativePrice)
	})

	t.Run("field scoping skips unrelated rules", func(t *testing.T) {
		p := validProduct()
		p.Name = ""
		assert.NoError(t, v.Validate(ctx, p, FieldPrice))
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, validProduct(), "no-such-field"), ErrUnknownField)
	})
}

func TestCatalogValidator_ProductUpdate(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	t.Run("empty update", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.ProductUpdate{}), ErrNoFieldsToUpdate)
	})

	t.Run("negative price", func(t *testing.T) {
		price := -5.0
		assert.ErrorIs(t, v.Validate(ctx, models.ProductUpdate{Price: &price}), ErrNegativePrice)
	})

	t.Run("valid partial", func(t *testing.T) {
		price := 19.99
		assert.NoError(t, v.Validate(ctx, models.ProductUpdate{Price: &price}))
	})
}

func TestCatalogValidator_Tutorial(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, validTutorial()))
	})

	t.Run("empty title", func(t *testing.T) {
		tut := validTutorial()
		tut.Title = ""
		assert.ErrorIs(t, v.Validate(ctx, tut), ErrEmptyTitle)
	})

	t.Run("empty content", func(t *testing.T) {
		tut := validTutorial()
		tut.Content = ""
		assert.ErrorIs(t, v.Validate(ctx, tut), ErrEmptyContent)
	})

	t.Run("unknown level", func(t *testing.T) {
		tut := validTutorial()
		tut.Level = "Ninja"
		assert.ErrorIs(t, v.Validate(ctx, tut), ErrUnknownLevel)
	})

	t.Run("empty level passes, caller applies default", func(t *testing.T) {
		tut := validTutorial()
		tut.Level = ""
		assert.NoError(t, v.Validate(ctx, tut))
	})

	t.Run("negative duration", func(t *testing.T) {
		tut := validTutorial()
		tut.Duration = -10
		assert.ErrorIs(t, v.Validate(ctx, tut), ErrNegativeDuration)
	})
}

func TestCatalogValidator_TutorialUpdate(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	t.Run("empty update", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.TutorialUpdate{}), ErrNoFieldsToUpdate)
	})

	t.Run("unknown level", func(t *testing.T) {
		level := "Ninja"
		assert.ErrorIs(t, v.Validate(ctx, models.TutorialUpdate{Level: &level}), ErrUnknownLevel)
	})

	t.Run("valid partial", func(t *testing.T) {
		title := "Updated"
		assert.NoError(t, v.Validate(ctx, models.TutorialUpdate{Title: &title}))
	})
}

func TestCatalogValidator_UnsupportedType(t *testing.T) {
	v := NewCatalogValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
