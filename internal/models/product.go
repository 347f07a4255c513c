package models

// TableName is the one fixed table the app touches. It is a trusted constant
// and never derived from request input.
const TableName = "products"

// Product is one inventory row. The JSON tags reproduce the wire contract the
// mobile client was built against (mixed PascalCase/lowercase, "Catagory"
// spelled as-is) and must not be "fixed".
type Product struct {
	ID       int     `gorm:"primaryKey" json:"ID"`
	Name     string  `gorm:"not null" json:"Name"`
	Image    *string `json:"Image"`
	Stock    *string `json:"Stock"`
	Catagory *string `json:"Catagory"`
	Location *string `gorm:"column:location" json:"location"`
	Status   *string `gorm:"column:status" json:"status"`
}

func (Product) TableName() string { return TableName }

// ProductPatch is a partial update: nil means "field not submitted, keep the
// stored value". A submitted empty string is still a submitted value.
type ProductPatch struct {
	Name     *string
	Image    *string
	Stock    *string
	Catagory *string
	Location *string
	Status   *string
}

// Merge applies patch on top of existing, field by field. The result is what
// gets written back in a single UPDATE.
func Merge(existing Product, patch ProductPatch) Product {
	out := existing
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Image != nil {
		out.Image = patch.Image
	}
	if patch.Stock != nil {
		out.Stock = patch.Stock
	}
	if patch.Catagory != nil {
		out.Catagory = patch.Catagory
	}
	if patch.Location != nil {
		out.Location = patch.Location
	}
	if patch.Status != nil {
		out.Status = patch.Status
	}
	return out
}
