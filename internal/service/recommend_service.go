package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/domain"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/repository"
)

// useCaseCategories mapea casos de uso a categorias del catalogo. Un
// caso de uso desconocido se interpreta como categoria literal.
var useCaseCategories = map[string][]string{
	"robotics": {"microcontroller", "sensors"},
	"iot":      {"sensors", "boards"},
	"ai":       {"gpu", "computer"},
	"gaming":   {"computer", "graphics"},
	"learning": {"kits", "tools"},
}

// RecommendService filtra y ordena el catalogo estatico.
type RecommendService struct {
	catalog repository.ProductCatalog
}

func NewRecommendService(catalog repository.ProductCatalog) *RecommendService {
	return &RecommendService{catalog: catalog}
}

// Recommend devuelve los productos dentro del presupuesto para el caso
// de uso, ordenados por precio ascendente.
func (s *RecommendService) Recommend(budget float64, useCase string, preferredSpecs map[string]string) []domain.Product {
	useCase = strings.ToLower(strings.TrimSpace(useCase))
	categories, ok := useCaseCategories[useCase]
	if !ok {
		categories = []string{useCase}
	}

	filtered := make([]domain.Product, 0)
	for _, p := range s.catalog.All() {
		if !containsString(categories, strings.ToLower(p.Category)) {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(p.Price), 64)
		if err != nil || price > budget {
			continue
		}
		if !matchesSpecs(p.Specs, preferredSpecs) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return priceSortKey(filtered[i].Price) < priceSortKey(filtered[j].Price)
	})
	return filtered
}

func matchesSpecs(specs, preferred map[string]string) bool {
	for key, want := range preferred {
		stored, ok := specs[key]
		if !ok {
			return false
		}
		if !strings.Contains(strings.ToLower(stored), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

// priceSortKey reproduce la clave de orden historica: precios que no
// estan escritos como digitos planos (exponentes, signos, espacios)
// ordenan como 0 aunque hayan pasado el filtro numerico.
func priceSortKey(price string) float64 {
	if !isPlainDecimal(price) {
		return 0
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0
	}
	return v
}

func isPlainDecimal(s string) bool {
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
