package geo

import "github.com/paulmach/orb"

// kenyaCounties holds the representative centroid of each supported county.
// orb.Point is (longitude, latitude).
var kenyaCounties = map[string]orb.Point{
	"Trans-Nzoia": {34.9510, 1.0504},
	"Kirinyaga":   {37.3830, -0.6588},
	"Makueni":     {37.8333, -2.2500},
	"Nairobi":     {36.8172, -1.2864},
	"Mombasa":     {39.6682, -4.0435},
	"Kisumu":      {34.7680, -0.0917},
	"Nakuru":      {36.0800, -0.3031},
	"Uasin Gishu": {35.2833, 0.5500},
	"Kiambu":      {36.8356, -1.1714},
	"Meru":        {37.6500, 0.0500},
	"Machakos":    {37.2634, -1.5177},
	"Bungoma":     {34.5606, 0.5635},
	"Kakamega":    {34.7519, 0.2827},
}

// kenyaAliases maps county names to other spellings and their main towns.
var kenyaAliases = map[string][]string{
	"Trans-Nzoia": {"Trans Nzoia County", "Kitale"},
	"Kirinyaga":   {"Kirinyaga County", "Kerugoya"},
	"Makueni":     {"Makueni County", "Wote"},
	"Nairobi":     {"Nairobi City", "Nairobi County"},
	"Mombasa":     {"Mombasa County", "Mombasa City"},
	"Kisumu":      {"Kisumu County", "Kisumu City"},
	"Nakuru":      {"Nakuru County", "Nakuru City"},
	"Uasin Gishu": {"Uasin Gishu County", "Eldoret"},
	"Kiambu":      {"Kiambu County", "Thika"},
	"Meru":        {"Meru County"},
	"Machakos":    {"Machakos County"},
	"Bungoma":     {"Bungoma County"},
	"Kakamega":    {"Kakamega County"},
}

// Kenya returns the county centroid table used by the marketplace.
func Kenya() *Table {
	t, err := NewTable(kenyaCounties, kenyaAliases)
	if err != nil {
		panic(err)
	}

	return t
}
