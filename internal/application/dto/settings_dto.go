package dto

// SettingsRequest reemplazo completo de la identidad de la tienda.
type SettingsRequest struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	IsLogoImage bool   `json:"is_logo_image"`
}

// SettingsResponse identidad de la tienda y título de página derivado.
type SettingsResponse struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	IsLogoImage bool   `json:"is_logo_image"`
	PageTitle   string `json:"page_title"`
}
