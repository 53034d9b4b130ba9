package tui

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/utils"
)

// ProductInput carries the raw text a product form collected. Every
// field is a string as typed; validation owns parsing.
type ProductInput struct {
	Name            string
	Description     string
	Price           string
	SoldPrice       string
	TotalQuantity   string
	CategoryID      string
	Images          []string
	Meta            string
	MetaDescription string
}

// ProductPayload is the normalized result of a successful validation,
// ready for the store layer.
type ProductPayload struct {
	Name            string
	Description     string
	Price           float64
	SoldPrice       *float64
	TotalQuantity   int
	CategoryID      string
	Images          []string
	Meta            map[string]any
	MetaDescription string
	Slug            string
}

// FieldErrors maps field names to their validation message. An empty
// map means the input passed.
type FieldErrors map[string]string

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// ValidateProduct checks a product form submission field by field and
// returns the normalized payload when everything passes. All failing
// fields are reported together rather than stopping at the first.
func ValidateProduct(in ProductInput) (ProductPayload, FieldErrors) {
	errs := FieldErrors{}
	payload := ProductPayload{
		Description:     strings.TrimSpace(in.Description),
		Images:          in.Images,
		MetaDescription: strings.TrimSpace(in.MetaDescription),
	}

	payload.Name = strings.TrimSpace(in.Name)
	if payload.Name == "" {
		errs["name"] = "Name is required."
	} else {
		payload.Slug = utils.Slugify(payload.Name)
	}

	price := strings.TrimSpace(in.Price)
	if price == "" {
		errs["price"] = "Price is required."
	} else if v, err := strconv.ParseFloat(price, 64); err != nil || v <= 0 {
		errs["price"] = "Price must be a number greater than zero."
	} else {
		payload.Price = v
	}

	if sold := strings.TrimSpace(in.SoldPrice); sold != "" {
		if v, err := strconv.ParseFloat(sold, 64); err != nil || v < 0 {
			errs["sold_price"] = "Sale price must be a non-negative number."
		} else {
			payload.SoldPrice = &v
		}
	}

	if qty := strings.TrimSpace(in.TotalQuantity); qty != "" {
		if v, err := strconv.Atoi(qty); err != nil || v < 0 {
			errs["total_quantity"] = "Quantity must be a non-negative whole number."
		} else {
			payload.TotalQuantity = v
		}
	}

	payload.CategoryID = strings.TrimSpace(in.CategoryID)
	if payload.CategoryID == "" {
		errs["category"] = "Category is required."
	}

	if meta := strings.TrimSpace(in.Meta); meta != "" {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(meta), &parsed); err != nil {
			errs["meta"] = "Metadata must be valid JSON."
		} else {
			payload.Meta = parsed
		}
	}

	if len(errs) > 0 {
		return ProductPayload{}, errs
	}
	return payload, errs
}

// CategoryInput is the raw text of the category form.
type CategoryInput struct {
	Name        string
	Description string
}

func ValidateCategory(in CategoryInput) (models.Category, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = "Name is required."
		return models.Category{}, errs
	}

	return models.Category{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}, errs
}
