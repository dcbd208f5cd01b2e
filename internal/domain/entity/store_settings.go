package entity

// StoreSettings identidad global de la tienda (singleton).
type StoreSettings struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`        // emoji/texto corto o referencia a imagen
	IsLogoImage bool   `json:"isLogoImage"` // true si Logo es una imagen
}

// DefaultStoreSettings valores con los que arranca una tienda nueva.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{Name: "BURGER HOUSE", Logo: "🍔", IsLogoImage: false}
}

// PageTitle título de página derivado del nombre.
func (s StoreSettings) PageTitle() string {
	return s.Name + " | Premium Taste"
}
