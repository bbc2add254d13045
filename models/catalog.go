package models

// CatalogService is one entry of the fixed service menu. The catalog is not
// persisted; appointments keep a denormalized copy of name and price.
type CatalogService struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceCatalog is the barbershop's menu. Prices are in whole reais.
var ServiceCatalog = []CatalogService{
	{Name: "Corte Executivo Premium", Price: 80},
	{Name: "Corte + Barba Modelada", Price: 120},
	{Name: "Pacote Noivo/Eventos", Price: 200},
	{Name: "Degradê Profissional", Price: 70},
	{Name: "Tratamento Capilar Premium", Price: 150},
	{Name: "Pigmentação de Barba", Price: 100},
}

// TimeSlots are the bookable times of a working day. The shop closes for
// lunch between 11:00 and 14:00.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

// LookupService returns the catalog entry with the given name.
func LookupService(name string) (CatalogService, bool) {
	for _, s := range ServiceCatalog {
		if s.Name == name {
			return s, true
		}
	}
	return CatalogService{}, false
}

// ValidTimeSlot reports whether slot is one of the bookable times.
func ValidTimeSlot(slot string) bool {
	for _, t := range TimeSlots {
		if t == slot {
			return true
		}
	}
	return false
}
