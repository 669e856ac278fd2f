package validators

import (
	"context"

	"github.com/ndanilchenko/go-skill-market/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping). With no fields given, every rule of the
// value's type runs.
const (
	// FieldName targets the display name of a product.
	FieldName = "name"

	// FieldTitle targets the title of a tutorial.
	FieldTitle = "title"

	// FieldDescription targets the free-text description of a catalog entity.
	FieldDescription = "description"

	// FieldContent targets the body text of a tutorial.
	FieldContent = "content"

	// FieldCategory targets the category label of a catalog entity.
	FieldCategory = "category"

	// FieldPrice targets the price of a product.
	FieldPrice = "price"

	// FieldStock targets the stock counter of a product.
	FieldStock = "stock"

	// FieldDuration targets the estimated completion time of a tutorial.
	FieldDuration = "duration"

	// FieldLevel targets the difficulty level of a tutorial.
	FieldLevel = "level"
)

// CatalogValidator validates the catalog entities of both marketplace
// variants: products, tutorials, and their partial-update payloads.
type CatalogValidator struct {
}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		return v.validateProduct(ctx, *value, fields...)

	case models.ProductUpdate:
		return v.validateProductUpdate(ctx, value, fields...)
	case *models.ProductUpdate:
		return v.validateProductUpdate(ctx, *value, fields...)

	case models.Tutorial:
		return v.validateTutorial(ctx, value, fields...)
	case *models.Tutorial:
		return v.validateTutorial(ctx, *value, fields...)

	case models.TutorialUpdate:
		return v.validateTutorialUpdate(ctx, value, fields...)
	case *models.TutorialUpdate:
		return v.validateTutorialUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateProduct(_ context.Context, product models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldCategory, FieldPrice, FieldStock}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if product.Name == "" {
				return ErrEmptyName
			}
		case FieldDescription:
			if product.Description == "" {
				return ErrEmptyDescription
			}
		case FieldCategory:
			if product.Category == "" {
				return ErrEmptyCategory
			}
		case FieldPrice:
			if product.Price < 0 {
				return ErrNegativePrice
			}
		case FieldStock:
			if product.Stock < 0 {
				return ErrNegativeStock
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateProductUpdate(_ context.Context, update models.ProductUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrice, FieldStock}
	}

	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	for _, field := range fields {
		switch field {
		case FieldPrice:
			if update.Price != nil && *update.Price < 0 {
				return ErrNegativePrice
			}
		case FieldStock:
			if update.Stock != nil && *update.Stock < 0 {
				return ErrNegativeStock
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateTutorial(_ context.Context, tutorial models.Tutorial, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldContent, FieldCategory, FieldDuration, FieldLevel}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if tutorial.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if tutorial.Description == "" {
				return ErrEmptyDescription
			}
		case FieldContent:
			if tutorial.Content == "" {
				return ErrEmptyContent
			}
		case FieldCategory:
			if tutorial.Category == "" {
				return ErrEmptyCategory
			}
		case FieldDuration:
			if tutorial.Duration < 0 {
				return ErrNegativeDuration
			}
		case FieldLevel:
			if tutorial.Level != "" && !models.ValidTutorialLevel(tutorial.Level) {
				return ErrUnknownLevel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateTutorialUpdate(_ context.Context, update models.TutorialUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDuration, FieldLevel}
	}

	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	for _, field := range fields {
		switch field {
		case FieldDuration:
			if update.Duration != nil && *update.Duration < 0 {
				return ErrNegativeDuration
			}
		case FieldLevel:
			if update.Level != nil && !models.ValidTutorialLevel(*update.Level) {
				return ErrUnknownLevel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
