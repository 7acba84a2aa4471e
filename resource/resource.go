package resource

import "sort"

// Descriptor parameterizes the generic list controller for one entity type.
// Endpoint is the upstream collection path, ListKey the canonical row-array
// key in the list envelope, Path the console page path.
type Descriptor struct {
	Name       string
	Endpoint   string
	Label      string
	ListKey    string
	Columns    []string
	Path       string
	References []Reference
}

// Reference names an auxiliary list a resource's filter/create UI needs
// (regions for shipping options, collections for products, ...). Each is
// fetched independently and may fail without taking down the rest.
type Reference struct {
	Name       string
	Endpoint   string
	ListKey    string
	LabelField string
}

var descriptors = map[string]Descriptor{
	"orders": {
		Name:     "orders",
		Endpoint: "/admin/orders",
		Label:    "Orders",
		ListKey:  "orders",
		Columns:  []string{"display_id", "status", "payment_status", "fulfillment_status", "email", "total", "currency_code", "created_at"},
		Path:     "/console/orders",
		References: []Reference{
			{Name: "regions", Endpoint: "/admin/regions", ListKey: "regions", LabelField: "name"},
			{Name: "sales-channels", Endpoint: "/admin/sales-channels", ListKey: "sales_channels", LabelField: "name"},
		},
	},
	"draft-orders": {
		Name:     "draft-orders",
		Endpoint: "/admin/draft-orders",
		Label:    "Draft Orders",
		ListKey:  "draft_orders",
		Columns:  []string{"display_id", "status", "email", "created_at"},
		Path:     "/console/draft-orders",
	},
	"products": {
		Name:     "products",
		Endpoint: "/admin/products",
		Label:    "Products",
		ListKey:  "products",
		Columns:  []string{"title", "handle", "status", "created_at"},
		Path:     "/console/products",
		References: []Reference{
			{Name: "collections", Endpoint: "/admin/collections", ListKey: "collections", LabelField: "title"},
			{Name: "categories", Endpoint: "/admin/product-categories", ListKey: "product_categories", LabelField: "name"},
			{Name: "sales-channels", Endpoint: "/admin/sales-channels", ListKey: "sales_channels", LabelField: "name"},
			{Name: "types", Endpoint: "/admin/product-types", ListKey: "product_types", LabelField: "value"},
			{Name: "tags", Endpoint: "/admin/product-tags", ListKey: "product_tags", LabelField: "value"},
		},
	},
	"customers": {
		Name:     "customers",
		Endpoint: "/admin/customers",
		Label:    "Customers",
		ListKey:  "customers",
		Columns:  []string{"email", "first_name", "last_name", "created_at"},
		Path:     "/console/customers",
		References: []Reference{
			{Name: "groups", Endpoint: "/admin/customer-groups", ListKey: "customer_groups", LabelField: "name"},
		},
	},
	"customer-groups": {
		Name:     "customer-groups",
		Endpoint: "/admin/customer-groups",
		Label:    "Customer Groups",
		ListKey:  "customer_groups",
		Columns:  []string{"name", "created_at"},
		Path:     "/console/customer-groups",
	},
	"regions": {
		Name:     "regions",
		Endpoint: "/admin/regions",
		Label:    "Regions",
		ListKey:  "regions",
		Columns:  []string{"name", "currency_code", "created_at"},
		Path:     "/console/regions",
	},
	"shipping-options": {
		Name:     "shipping-options",
		Endpoint: "/admin/shipping-options",
		Label:    "Shipping Options",
		ListKey:  "shipping_options",
		Columns:  []string{"name", "price_type", "created_at"},
		Path:     "/console/shipping-options",
		References: []Reference{
			{Name: "regions", Endpoint: "/admin/regions", ListKey: "regions", LabelField: "name"},
			{Name: "profiles", Endpoint: "/admin/shipping-profiles", ListKey: "shipping_profiles", LabelField: "name"},
			{Name: "providers", Endpoint: "/admin/fulfillment-providers", ListKey: "fulfillment_providers", LabelField: "id"},
		},
	},
	"shipping-profiles": {
		Name:     "shipping-profiles",
		Endpoint: "/admin/shipping-profiles",
		Label:    "Shipping Profiles",
		ListKey:  "shipping_profiles",
		Columns:  []string{"name", "type", "created_at"},
		Path:     "/console/shipping-profiles",
	},
	"tax-regions": {
		Name:     "tax-regions",
		Endpoint: "/admin/tax-regions",
		Label:    "Tax Regions",
		ListKey:  "tax_regions",
		Columns:  []string{"country_code", "province_code", "created_at"},
		Path:     "/console/tax-regions",
	},
	"tax-rates": {
		Name:     "tax-rates",
		Endpoint: "/admin/tax-rates",
		Label:    "Tax Rates",
		ListKey:  "tax_rates",
		Columns:  []string{"name", "rate", "code", "created_at"},
		Path:     "/console/tax-rates",
		References: []Reference{
			{Name: "tax-regions", Endpoint: "/admin/tax-regions", ListKey: "tax_regions", LabelField: "country_code"},
		},
	},
	"promotions": {
		Name:     "promotions",
		Endpoint: "/admin/promotions",
		Label:    "Promotions",
		ListKey:  "promotions",
		Columns:  []string{"code", "is_automatic", "created_at"},
		Path:     "/console/promotions",
		References: []Reference{
			{Name: "campaigns", Endpoint: "/admin/campaigns", ListKey: "campaigns", LabelField: "name"},
		},
	},
	"campaigns": {
		Name:     "campaigns",
		Endpoint: "/admin/campaigns",
		Label:    "Campaigns",
		ListKey:  "campaigns",
		Columns:  []string{"name", "campaign_identifier", "starts_at", "ends_at"},
		Path:     "/console/campaigns",
	},
	"price-lists": {
		Name:     "price-lists",
		Endpoint: "/admin/price-lists",
		Label:    "Price Lists",
		ListKey:  "price_lists",
		Columns:  []string{"title", "status", "type", "created_at"},
		Path:     "/console/price-lists",
	},
	"inventory-items": {
		Name:     "inventory-items",
		Endpoint: "/admin/inventory-items",
		Label:    "Inventory Items",
		ListKey:  "inventory_items",
		Columns:  []string{"sku", "title", "created_at"},
		Path:     "/console/inventory-items",
		References: []Reference{
			{Name: "locations", Endpoint: "/admin/stock-locations", ListKey: "stock_locations", LabelField: "name"},
		},
	},
	"stock-locations": {
		Name:     "stock-locations",
		Endpoint: "/admin/stock-locations",
		Label:    "Stock Locations",
		ListKey:  "stock_locations",
		Columns:  []string{"name", "created_at"},
		Path:     "/console/stock-locations",
	},
	"collections": {
		Name:     "collections",
		Endpoint: "/admin/collections",
		Label:    "Collections",
		ListKey:  "collections",
		Columns:  []string{"title", "handle", "created_at"},
		Path:     "/console/collections",
	},
	"categories": {
		Name:     "categories",
		Endpoint: "/admin/product-categories",
		Label:    "Categories",
		ListKey:  "product_categories",
		Columns:  []string{"name", "handle", "is_active", "created_at"},
		Path:     "/console/categories",
	},
	"product-types": {
		Name:     "product-types",
		Endpoint: "/admin/product-types",
		Label:    "Product Types",
		ListKey:  "product_types",
		Columns:  []string{"value", "created_at"},
		Path:     "/console/product-types",
	},
	"product-tags": {
		Name:     "product-tags",
		Endpoint: "/admin/product-tags",
		Label:    "Product Tags",
		ListKey:  "product_tags",
		Columns:  []string{"value", "created_at"},
		Path:     "/console/product-tags",
	},
	"sales-channels": {
		Name:     "sales-channels",
		Endpoint: "/admin/sales-channels",
		Label:    "Sales Channels",
		ListKey:  "sales_channels",
		Columns:  []string{"name", "description", "is_disabled"},
		Path:     "/console/sales-channels",
	},
	"invites": {
		Name:     "invites",
		Endpoint: "/admin/invites",
		Label:    "Invites",
		ListKey:  "invites",
		Columns:  []string{"email", "accepted", "created_at"},
		Path:     "/console/invites",
	},
	"api-keys": {
		Name:     "api-keys",
		Endpoint: "/admin/api-keys",
		Label:    "API Keys",
		ListKey:  "api_keys",
		Columns:  []string{"title", "type", "redacted", "created_at"},
		Path:     "/console/api-keys",
	},
}

// Lookup returns the descriptor for a resource name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := descriptors[name]
	return d, ok
}

// All returns every descriptor sorted by name.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
