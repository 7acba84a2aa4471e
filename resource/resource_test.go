package resource

import "testing"

func TestLookup(t *testing.T) {
	d, ok := Lookup("orders")
	if !ok {
		t.Fatal("orders descriptor should exist")
	}
	if d.Endpoint != "/admin/orders" || d.ListKey != "orders" {
		t.Errorf("descriptor = %+v, want /admin/orders with listKey orders", d)
	}

	if _, ok := Lookup("no-such-resource"); ok {
		t.Error("unknown resource should not resolve")
	}
}

func TestAll_SortedAndComplete(t *testing.T) {
	all := All()
	if len(all) != len(descriptors) {
		t.Fatalf("All() = %d, want %d", len(all), len(descriptors))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Fatalf("descriptors not sorted: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
}

func TestDescriptors_Wellformed(t *testing.T) {
	for name, d := range descriptors {
		if d.Name != name {
			t.Errorf("%s: Name = %q, want map key", name, d.Name)
		}
		if d.Endpoint == "" || d.ListKey == "" || d.Label == "" {
			t.Errorf("%s: incomplete descriptor %+v", name, d)
		}
		if len(d.Columns) == 0 {
			t.Errorf("%s: no columns", name)
		}
		for _, ref := range d.References {
			if ref.Endpoint == "" || ref.ListKey == "" {
				t.Errorf("%s: incomplete reference %+v", name, ref)
			}
		}
	}
}

func TestProductReferences(t *testing.T) {
	d, _ := Lookup("products")
	want := map[string]bool{"collections": true, "categories": true, "sales-channels": true, "types": true, "tags": true}
	for _, ref := range d.References {
		delete(want, ref.Name)
	}
	if len(want) != 0 {
		t.Errorf("products missing references: %v", want)
	}
}
