package entity

import (
	"strings"
	"time"
)

// Warehouse representa un almacén físico o virtual (tránsito, por ejemplo).
// Los almacenes forman un árbol: Path es la ruta materializada construida con
// los nombres de los ancestros, de modo que ordenar por Path recorre el árbol
// con los hermanos en orden alfabético.
type Warehouse struct {
	ID        string
	Name      string // único en todo el árbol
	ParentID  string // vacío si es raíz
	Path      string // "/Central/Zona A"
	Depth     int    // 0 para raíces
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChildPath construye la ruta materializada de un nodo hijo.
// Con parentPath vacío el nodo es raíz.
func ChildPath(parentPath, name string) string {
	return parentPath + "/" + name
}

// PathDepth calcula la profundidad que corresponde a una ruta (raíz = 0).
func PathDepth(path string) int {
	return strings.Count(path, "/") - 1
}

// IsDescendantPath indica si path está dentro del subárbol de ancestorPath
// (estrictamente: un nodo no es descendiente de sí mismo).
func IsDescendantPath(path, ancestorPath string) bool {
	return path != ancestorPath && strings.HasPrefix(path, ancestorPath+"/")
}

// String devuelve el nombre del almacén.
func (w Warehouse) String() string {
	return w.Name
}
