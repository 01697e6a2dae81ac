package geo

import (
	"fmt"
	"net/url"
)

// Location — адрес магазина с приблизительными координатами.
// Данные чисто презентационные, store их не касается.
type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// StoreLocation — точка продаж в Ташкенте.
var StoreLocation = Location{
	Address: "г. Ташкент, ул. Строительная, 15",
	Lat:     41.2995,
	Lng:     69.2401,
}

// EmbedURL возвращает URL для встраиваемой карты OpenStreetMap
// с маркером на координатах точки.
func (l Location) EmbedURL() string {
	const d = 0.01
	return fmt.Sprintf(
		"https://www.openstreetmap.org/export/embed.html?bbox=%g,%g,%g,%g&layer=mapnik&marker=%g,%g",
		l.Lng-d, l.Lat-d, l.Lng+d, l.Lat+d, l.Lat, l.Lng)
}

// ExternalURL возвращает ссылку "открыть в картах".
func (l Location) ExternalURL() string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%g&mlon=%g&zoom=16#map=16/%g/%g",
		l.Lat, l.Lng, l.Lat, l.Lng)
}

// GeoURI возвращает geo:-ссылку для мобильных картографических приложений.
func (l Location) GeoURI() string {
	return fmt.Sprintf("geo:%g,%g?q=%g,%g(%s)", l.Lat, l.Lng, l.Lat, l.Lng, url.QueryEscape(l.Address))
}
