package create

import (
	"context"
	"fmt"
	"strings"

	"storeadmin.GO/core/retry"
	"storeadmin.GO/core/slug"
	"storeadmin.GO/upstream"
)

// handleMaxAttempts bounds the handle-collision loop: the base handle plus
// numeric suffixes -2, -3, -4, -5.
const handleMaxAttempts = 5

// ProductInput is the create-product draft, coerced to a payload at submit.
type ProductInput struct {
	Title           string
	Handle          string // optional; derived from Title when empty
	Description     string
	Status          string
	CollectionID    string
	TypeID          string
	SalesChannelIDs []string
	TagIDs          []string
	DefaultVariant  VariantInput
}

// VariantInput is the default variant created right after the product.
type VariantInput struct {
	Title string
	SKU   string
}

// ProductOutcome reports a product create. VariantErr is set when the
// product exists but the default-variant step failed: partial success, the
// operator gets the product id and finishes the variant manually.
type ProductOutcome struct {
	ProductID  string
	Handle     string
	Attempts   int
	VariantErr error
}

// IsHandleCollision classifies an error as a retryable handle conflict:
// a 409 status, or collision wording that names the handle.
func IsHandleCollision(err error) bool {
	if err == nil {
		return false
	}
	if upstream.IsConflict(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "handle") {
		return false
	}
	for _, word := range []string{"already exists", "must be unique", "duplicate", "taken"} {
		if strings.Contains(msg, word) {
			return true
		}
	}
	return false
}

// CreateProduct creates a product with a unique handle, retrying collisions
// with numeric suffixes up to the attempt ceiling. Any other error class
// aborts immediately.
func CreateProduct(ctx context.Context, client Poster, in ProductInput) (*ProductOutcome, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &FieldError{Field: "title", Message: "required"}
	}
	base := strings.TrimSpace(in.Handle)
	if base == "" {
		base = slug.FromTitle(in.Title)
	}
	if base == "" {
		return nil, &FieldError{Field: "handle", Message: "cannot derive a handle from the title"}
	}

	policy := retry.Policy{
		MaxAttempts: handleMaxAttempts,
		Retryable:   IsHandleCollision,
		Mutate: func(_ string, attempt int) string {
			return fmt.Sprintf("%s-%d", base, attempt)
		},
	}

	var entity map[string]interface{}
	handle, attempts, err := policy.Do(ctx, base, func(ctx context.Context, candidate string) error {
		res, err := client.Create(ctx, "/admin/products", productPayload(in, candidate))
		if err != nil {
			return err
		}
		entity = upstream.CreatedEntity(res, "product")
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &ProductOutcome{
		ProductID: upstream.EntityID(entity),
		Handle:    handle,
		Attempts:  attempts,
	}

	if in.DefaultVariant.Title != "" || in.DefaultVariant.SKU != "" {
		variantEndpoint := "/admin/products/" + out.ProductID + "/variants"
		if _, verr := client.Create(ctx, variantEndpoint, variantPayload(in.DefaultVariant)); verr != nil {
			out.VariantErr = verr
		}
	}
	return out, nil
}

func productPayload(in ProductInput, handle string) map[string]interface{} {
	p := map[string]interface{}{
		"title":  in.Title,
		"handle": handle,
	}
	if in.Description != "" {
		p["description"] = in.Description
	}
	if in.Status != "" {
		p["status"] = in.Status
	}
	if in.CollectionID != "" {
		p["collection_id"] = in.CollectionID
	}
	if in.TypeID != "" {
		p["type_id"] = in.TypeID
	}
	if len(in.SalesChannelIDs) > 0 {
		channels := make([]map[string]string, len(in.SalesChannelIDs))
		for i, id := range in.SalesChannelIDs {
			channels[i] = map[string]string{"id": id}
		}
		p["sales_channels"] = channels
	}
	if len(in.TagIDs) > 0 {
		tags := make([]map[string]string, len(in.TagIDs))
		for i, id := range in.TagIDs {
			tags[i] = map[string]string{"id": id}
		}
		p["tags"] = tags
	}
	return p
}

func variantPayload(v VariantInput) map[string]interface{} {
	title := v.Title
	if title == "" {
		title = "Default"
	}
	p := map[string]interface{}{"title": title}
	if v.SKU != "" {
		p["sku"] = v.SKU
	}
	return p
}
