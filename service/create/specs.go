package create

// Form specs per resource. Products and customers are not listed here:
// their creates run through CreateProduct / CreateCustomer, which carry
// the handle-uniqueness loop and the group-assignment step.
var formSpecs = map[string]FormSpec{
	"draft-orders": {
		Required: []string{"email", "region_id"},
		JSON:     []string{"metadata"},
	},
	"customer-groups": {
		Required: []string{"name"},
		JSON:     []string{"metadata"},
	},
	"regions": {
		Required: []string{"name", "currency_code"},
		IDLists:  []string{"countries", "payment_providers"},
		JSON:     []string{"metadata"},
	},
	"shipping-options": {
		Required: []string{"name", "region_id", "provider_id", "price_type"},
		Numeric:  []string{"amount"},
		Boolean:  []string{"admin_only"},
	},
	"shipping-profiles": {
		Required: []string{"name", "type"},
		JSON:     []string{"metadata"},
	},
	"tax-regions": {
		Required: []string{"country_code"},
		JSON:     []string{"metadata"},
	},
	"tax-rates": {
		Required: []string{"name"},
		Numeric:  []string{"rate"},
		Boolean:  []string{"is_combinable"},
	},
	"promotions": {
		Required: []string{"code"},
		Boolean:  []string{"is_automatic"},
	},
	"campaigns": {
		Required: []string{"name"},
	},
	"price-lists": {
		Required: []string{"title"},
		IDLists:  []string{"customer_group_ids"},
	},
	"inventory-items": {
		Required: []string{"sku"},
		Numeric:  []string{"weight", "height", "width", "length"},
		JSON:     []string{"metadata"},
	},
	"stock-locations": {
		Required: []string{"name"},
		JSON:     []string{"metadata"},
	},
	"collections": {
		Required: []string{"title"},
		JSON:     []string{"metadata"},
	},
	"categories": {
		Required: []string{"name"},
		Boolean:  []string{"is_active", "is_internal"},
		JSON:     []string{"metadata"},
	},
	"product-types": {
		Required: []string{"value"},
	},
	"product-tags": {
		Required: []string{"value"},
	},
	"sales-channels": {
		Required: []string{"name"},
		Boolean:  []string{"is_disabled"},
	},
	"invites": {
		Required: []string{"email"},
	},
	"api-keys": {
		Required: []string{"title", "type"},
	},
}

// SpecFor returns the form spec for a resource; ok is false for resources
// that cannot be created through the console (orders arrive via checkout).
func SpecFor(name string) (FormSpec, bool) {
	spec, ok := formSpecs[name]
	return spec, ok
}
