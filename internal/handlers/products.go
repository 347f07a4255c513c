package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"khanhomstore/internal/models"
	"khanhomstore/internal/repository"
	"khanhomstore/internal/storage"
)

// ProductStore is what the handlers need from the repository. Declared here
// so tests can drop in an in-memory fake.
type ProductStore interface {
	ListAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Insert(p models.Product) (int, error)
	Update(p models.Product) error
	Delete(id int) (bool, error)
}

// ProductHandler serves the /api/products endpoints.
type ProductHandler struct {
	store  ProductStore
	images *storage.ImageStore
}

func NewProductHandler(store ProductStore, images *storage.ImageStore) *ProductHandler {
	return &ProductHandler{store: store, images: images}
}

// List returns every product, newest first.
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.store.ListAll()
	if err != nil {
		log.Println("GET /products error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns one product by id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.store.GetByID(id)
	if errors.Is(err, repository.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		log.Println("GET /products/:id error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create inserts a new product from a multipart form. If an image file is
// attached it is written to the store first; when that write fails the row
// is never inserted.
func (h *ProductHandler) Create(c *gin.Context) {
	name := c.PostForm("Name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required."})
		return
	}

	p := models.Product{
		Name:     name,
		Stock:    formPtr(c, "Stock"),
		Catagory: formPtr(c, "Catagory"),
		Location: formPtr(c, "location"),
		Status:   formPtr(c, "status"),
	}

	if file, err := c.FormFile("Image"); err == nil {
		url, err := h.storeUpload(file)
		if err != nil {
			log.Println("POST /products image error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		p.Image = &url
	}

	id, err := h.store.Insert(p)
	if err != nil {
		log.Println("POST /products error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "productId": id, "image": p.Image})
}

// Update merges the submitted fields over the stored row and writes the
// result back in one statement. A new image replaces the old file: new file
// first, then the old one is unlinked, then the row is updated.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	old, err := h.store.GetByID(id)
	if errors.Is(err, repository.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		log.Println("PUT /products/:id error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	patch := models.ProductPatch{
		Name:     formPtr(c, "Name"),
		Stock:    formPtr(c, "Stock"),
		Catagory: formPtr(c, "Catagory"),
		Location: formPtr(c, "location"),
		Status:   formPtr(c, "status"),
	}

	if file, err := c.FormFile("Image"); err == nil {
		url, err := h.storeUpload(file)
		if err != nil {
			log.Println("PUT /products/:id image error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if old.Image != nil {
			if err := h.images.Delete(*old.Image); err != nil {
				log.Println("PUT /products/:id old image error:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		patch.Image = &url
	}

	merged := models.Merge(old, patch)
	if err := h.store.Update(merged); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Println("PUT /products/:id error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "image": merged.Image})
}

// Delete removes the row and its image file, if any.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.store.GetByID(id)
	if errors.Is(err, repository.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		log.Println("DELETE /products/:id error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if p.Image != nil {
		if err := h.images.Delete(*p.Image); err != nil {
			log.Println("DELETE /products/:id image error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	removed, err := h.store.Delete(id)
	if err != nil {
		log.Println("DELETE /products/:id error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or already deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

func (h *ProductHandler) storeUpload(file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return h.images.Store(data, filepath.Ext(file.Filename))
}

// paramID parses :id. A non-numeric id matches no row, so it reports the
// same 404 the lookup would.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return 0, false
	}
	return id, true
}

// formPtr distinguishes "field absent" (nil) from "field submitted empty"
// (pointer to ""), which the merge relies on.
func formPtr(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}
