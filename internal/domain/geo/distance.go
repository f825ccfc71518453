package geo

import (
	"math"
	"sort"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
)

// DefaultRadius es el umbral de visibilidad de tiendas para un usuario,
// en unidades del plano sintético.
const DefaultRadius = 30.0

// Point es una coordenada (latitude, longitude) en el plano sintético [0,100].
type Point struct {
	Latitude  float64
	Longitude float64
}

// InRange indica si ambas coordenadas caen dentro de [0, 100].
func (p Point) InRange() bool {
	return p.Latitude >= 0 && p.Latitude <= 100 &&
		p.Longitude >= 0 && p.Longitude <= 100
}

// Distance calcula la distancia euclidiana entre dos puntos del plano.
// No es distancia geodésica: el esquema define un plano sintético sin unidades.
func Distance(a, b Point) float64 {
	dlat := a.Latitude - b.Latitude
	dlong := a.Longitude - b.Longitude
	return math.Sqrt(dlat*dlat + dlong*dlong)
}

// StoreDistance es una tienda anotada con su distancia al punto consultado.
type StoreDistance struct {
	Store    entity.Store
	Distance float64
}

// StoresWithinRadius filtra las tiendas con distancia <= radius desde from.
// El orden es determinista: distancia ascendente, empates por id de tienda.
func StoresWithinRadius(stores []entity.Store, from Point, radius float64) []StoreDistance {
	result := make([]StoreDistance, 0, len(stores))
	for _, s := range stores {
		d := Distance(Point{Latitude: s.Latitude, Longitude: s.Longitude}, from)
		if d <= radius {
			result = append(result, StoreDistance{Store: s, Distance: d})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Distance != result[j].Distance {
			return result[i].Distance < result[j].Distance
		}
		return result[i].Store.ID < result[j].Store.ID
	})
	return result
}
