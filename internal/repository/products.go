package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"khanhomstore/internal/models"
)

// ErrProductNotFound is returned when an id matches no row.
var ErrProductNotFound = errors.New("product not found")

// Products is the GORM-backed repository over the fixed products table.
// Every value goes through bound parameters; the table name comes from the
// model constant, never from a request.
type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) *Products {
	return &Products{db: db}
}

// ListAll returns every product, newest id first.
func (r *Products) ListAll() ([]models.Product, error) {
	items := []models.Product{}
	if err := r.db.Order("id desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

func (r *Products) GetByID(id int) (models.Product, error) {
	var p models.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// Insert stores a new row and returns the generated id.
func (r *Products) Insert(p models.Product) (int, error) {
	p.ID = 0
	if err := r.db.Create(&p).Error; err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return p.ID, nil
}

// Update writes all six mutable columns in one statement. The caller has
// already merged omitted fields against the stored row, so a plain overwrite
// is correct here. Nil pointers persist as NULL, which a column map gives us
// and a struct update would silently skip.
func (r *Products) Update(p models.Product) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":     p.Name,
		"image":    p.Image,
		"stock":    p.Stock,
		"catagory": p.Catagory,
		"location": p.Location,
		"status":   p.Status,
	})
	if res.Error != nil {
		return fmt.Errorf("update product %d: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes the row and reports whether anything was actually removed,
// so the handler can 404 even after its earlier existence check (the two can
// disagree under a concurrent delete).
func (r *Products) Delete(id int) (bool, error) {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete product %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
