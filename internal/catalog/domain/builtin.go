package domain

// Builtin returns the fixed product table shipped with the binary. It is the
// terminal catalog source: always available, never empty.
func Builtin() []Product {
	products := []Product{
		{ID: "BRS-001", Name: "Beras Premium 5kg", Price: 78000, Category: "sembako", Unit: "karung"},
		{ID: "MGR-001", Name: "Minyak Goreng 2L", Price: 38000, Category: "sembako", Unit: "botol"},
		{ID: "GPS-001", Name: "Gula Pasir 1kg", Price: 17500, Category: "sembako", Unit: "bungkus"},
		{ID: "TPT-001", Name: "Tepung Terigu 1kg", Price: 13000, Category: "sembako", Unit: "bungkus"},
		{ID: "KPB-001", Name: "Kopi Bubuk 200g", Price: 24000, Category: "minuman", Unit: "bungkus"},
		{ID: "THC-001", Name: "Teh Celup isi 25", Price: 9500, Category: "minuman", Unit: "kotak"},
		{ID: "AMD-001", Name: "Air Mineral 600ml", Price: 3500, Category: "minuman", Unit: "botol"},
		{ID: "MIE-001", Name: "Mie Instan Goreng", Price: 3200, Category: "makanan", Unit: "bungkus"},
		{ID: "SBM-001", Name: "Sabun Mandi 85g", Price: 4500, Category: "kebersihan", Unit: "batang"},
		{ID: "DTR-001", Name: "Deterjen Bubuk 800g", Price: 21000, Category: "kebersihan", Unit: "bungkus"},
	}
	for i := range products {
		products[i].Image = DefaultImage(products[i].ID)
	}
	return products
}
