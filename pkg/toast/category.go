package toast

// Recognised categories. Any other value renders with ColorDefault.
const (
	CategorySuccess = "success"
	CategoryError   = "error"
	CategoryInfo    = "info"
)

// Background colors per category.
const (
	ColorSuccess = "#198754"
	ColorError   = "#dc3545"
	ColorInfo    = "#0d6efd"
	ColorDefault = "#6c757d"
)

var palette = map[string]string{
	CategorySuccess: ColorSuccess,
	CategoryError:   ColorError,
	CategoryInfo:    ColorInfo,
}

// ColorFor returns the background color for category. Matching is exact and
// case-sensitive.
func ColorFor(category string) string {
	if c, ok := palette[category]; ok {
		return c
	}
	return ColorDefault
}
