package repository

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/domain"
)

// ProductCatalog expone el catalogo estatico cargado al arranque.
type ProductCatalog interface {
	All() []domain.Product
}

type staticProductCatalog struct {
	products []domain.Product
}

// NewStaticProductCatalog construye un catalogo a partir de un slice ya cargado.
func NewStaticProductCatalog(products []domain.Product) ProductCatalog {
	return &staticProductCatalog{products: products}
}

func (c *staticProductCatalog) All() []domain.Product {
	return c.products
}

// productRecord tolera precios escritos como string o como numero JSON.
type productRecord struct {
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Price    json.RawMessage   `json:"price"`
	Specs    map[string]string `json:"specs"`
}

// LoadProductCatalog lee el archivo JSON del catalogo. Un archivo ausente
// no es fatal: devuelve un catalogo vacio y el error para loguear.
func LoadProductCatalog(path string) (ProductCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewStaticProductCatalog(nil), err
	}

	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return NewStaticProductCatalog(nil), err
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, domain.Product{
			Name:     rec.Name,
			Category: rec.Category,
			Price:    strings.Trim(string(rec.Price), `"`),
			Specs:    rec.Specs,
		})
	}
	return NewStaticProductCatalog(products), nil
}
