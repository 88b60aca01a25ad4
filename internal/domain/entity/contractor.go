package entity

import "time"

// ContractorGroup representa un nodo del árbol de grupos de contratistas
// (proveedores, clientes, transportistas...). Misma mecánica de ruta
// materializada que Warehouse.
type ContractorGroup struct {
	ID        string
	Name      string // único en todo el árbol
	ParentID  string // vacío si es raíz
	Path      string
	Depth     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// String devuelve el nombre del grupo.
func (g ContractorGroup) String() string {
	return g.Name
}

// Contractor representa una parte externa involucrada en un documento,
// opcionalmente asociada a un grupo.
type Contractor struct {
	ID        string
	Name      string // único
	GroupID   string // vacío si no pertenece a un grupo
	GroupName string // denormalizado en lecturas
	TaxID     string
	Email     string
	Phone     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// String devuelve el nombre del contratista.
func (c Contractor) String() string {
	return c.Name
}
