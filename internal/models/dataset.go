package models

// Dataset is an ordered, read-only product table. Every method that derives
// a new Dataset preserves source order.
type Dataset struct {
	products []Product
}

// NewDataset copies products into a Dataset.
func NewDataset(products []Product) Dataset {
	cp := make([]Product, len(products))
	copy(cp, products)
	return Dataset{products: cp}
}

// Len returns the number of products.
func (d Dataset) Len() int {
	return len(d.products)
}

// At returns the i-th product.
func (d Dataset) At(i int) Product {
	return d.products[i]
}

// Products returns a copy of the rows.
func (d Dataset) Products() []Product {
	cp := make([]Product, len(d.products))
	copy(cp, d.products)
	return cp
}

// Names returns product names in order, duplicates included.
func (d Dataset) Names() []string {
	names := make([]string, len(d.products))
	for i, p := range d.products {
		names[i] = p.Name
	}
	return names
}

// Where returns the rows for which keep is true.
func (d Dataset) Where(keep func(Product) bool) Dataset {
	out := make([]Product, 0, len(d.products))
	for _, p := range d.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return Dataset{products: out}
}

// DistinctValues lists the present values of attr in first-seen order.
func (d Dataset) DistinctValues(attr Attribute) []string {
	seen := make(map[string]bool)
	var values []string
	for _, p := range d.products {
		v, ok := p.Value(attr)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// HasCategories reports whether any row carries a known category. Files
// without a Type column have none.
func (d Dataset) HasCategories() bool {
	for _, p := range d.products {
		if p.Category != CategoryUnknown {
			return true
		}
	}
	return false
}
