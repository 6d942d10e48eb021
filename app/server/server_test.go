package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/webpanel/deploy/app/categories"
	"github.com/webpanel/deploy/app/images"
	"github.com/webpanel/deploy/app/products"
	"github.com/webpanel/deploy/models"
)

// --- In-memory stores ---

type fakeCategoryStore struct {
	rows   []models.Category
	nextID uint
}

func (f *fakeCategoryStore) InTransaction(fn func(models.CategoryStore) error) error {
	return fn(f)
}

func (f *fakeCategoryStore) FindAll() ([]models.Category, error) {
	return f.rows, nil
}

func (f *fakeCategoryStore) FindByID(id uint) (*models.Category, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (f *fakeCategoryStore) ExistsByID(id uint) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) ExistsByNameFold(name string) (bool, error) {
	for i := range f.rows {
		if strings.EqualFold(f.rows[i].Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) Save(c *models.Category) error {
	if c.ID == 0 {
		f.nextID++
		c.ID = f.nextID
		f.rows = append(f.rows, *c)
		return nil
	}
	for i := range f.rows {
		if f.rows[i].ID == c.ID {
			f.rows[i] = *c
			return nil
		}
	}
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeCategoryStore) DeleteByID(id uint) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeImageStore struct {
	rows   []models.Image
	nextID uint
}

func (f *fakeImageStore) InTransaction(fn func(models.ImageStore) error) error {
	return fn(f)
}

func (f *fakeImageStore) FindAll() ([]models.Image, error) {
	return f.rows, nil
}

func (f *fakeImageStore) FindByID(id uint) (*models.Image, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			img := f.rows[i]
			return &img, nil
		}
	}
	return nil, models.ErrImageNotFound
}

func (f *fakeImageStore) ExistsByID(id uint) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeImageStore) Save(img *models.Image) error {
	if img.ID == 0 {
		f.nextID++
		img.ID = f.nextID
		f.rows = append(f.rows, *img)
		return nil
	}
	for i := range f.rows {
		if f.rows[i].ID == img.ID {
			f.rows[i] = *img
			return nil
		}
	}
	f.rows = append(f.rows, *img)
	return nil
}

func (f *fakeImageStore) DeleteByID(id uint) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProductStore struct {
	rows   []models.Product
	nextID uint
}

func (f *fakeProductStore) InTransaction(fn func(models.ProductStore) error) error {
	return fn(f)
}

func (f *fakeProductStore) FindAll() ([]models.Product, error) {
	return f.rows, nil
}

func (f *fakeProductStore) FindByID(id uint) (*models.Product, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			p := f.rows[i]
			return &p, nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (f *fakeProductStore) ExistsByID(id uint) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductStore) Save(p *models.Product) error {
	if p.ID == 0 {
		f.nextID++
		p.ID = f.nextID
	}
	for i := range p.Variations {
		if p.Variations[i].ID == 0 {
			p.Variations[i].ID = uint(i) + 1
		}
		p.Variations[i].ProductID = p.ID
	}
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakeProductStore) DeleteByID(id uint) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestServer() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	categoryService := categories.NewCategoryService(&fakeCategoryStore{}, log)
	imageService := images.NewImageService(&fakeImageStore{}, log)
	productService := products.NewProductService(&fakeProductStore{}, log)

	return New(
		log,
		categories.NewCategoryHandler(categoryService, log),
		images.NewImageHandler(imageService, log),
		products.NewProductHandler(productService, log),
	)
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestCategoryLifecycle(t *testing.T) {
	srv := newTestServer()

	rec := do(t, srv, "POST", "/categories", `{"name":"Drinks"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Drinks", created["name"])

	rec = do(t, srv, "POST", "/categories", `{"name":"drinks"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, "GET", "/categories/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, "DELETE", "/categories/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, srv, "GET", "/categories/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImageRoutes(t *testing.T) {
	srv := newTestServer()

	rec := do(t, srv, "POST", "/api/image", `{"name":"logo.png","base64":"aGVsbG8=","size":5}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, srv, "GET", "/api/image", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, "PUT", "/api/image/1", `{"name":"banner.png","base64":"d29ybGQ=","size":9}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "banner.png", updated["name"])

	rec = do(t, srv, "DELETE", "/api/image/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, srv, "GET", "/api/image/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductRoutes(t *testing.T) {
	srv := newTestServer()

	rec := do(t, srv, "POST", "/api/product",
		`{"name":"Margherita","category":"PIZZA","available":true,"variations":[{"sizeName":"Small","price":9.5}]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, srv, "GET", "/api/product/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	variations, ok := got["variations"].([]any)
	assert.True(t, ok)
	assert.Len(t, variations, 1)

	rec = do(t, srv, "DELETE", "/api/product/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, srv, "GET", "/api/product/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
