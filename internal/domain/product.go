package domain

// Product es una entrada del catalogo estatico de hardware.
// Price queda como string porque el JSON del catalogo mezcla
// formatos; el filtro decide que entradas son numericas.
type Product struct {
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Price    string            `json:"price"`
	Specs    map[string]string `json:"specs"`
}
