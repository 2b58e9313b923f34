package domain

import (
	"errors"
	"strconv"
	"strings"
)

var ErrIncompleteRow = errors.New("row lacks id or name")

// fieldSynonyms maps lowercased source column names onto canonical Product
// fields. Catalog exports come from spreadsheets maintained by hand, so the
// same field shows up under English and Indonesian spellings depending on who
// last edited the sheet.
var fieldSynonyms = map[string]string{
	"id":          "id",
	"kode":        "id",
	"sku":         "id",
	"name":        "name",
	"nama":        "name",
	"produk":      "name",
	"price":       "price",
	"harga":       "price",
	"harga jual":  "price",
	"category":    "category",
	"kategori":    "category",
	"unit":        "unit",
	"satuan":      "unit",
	"stock":       "stock",
	"stok":        "stock",
	"cost":        "cost",
	"modal":       "cost",
	"harga modal": "cost",
	"vendor":      "vendor",
	"pemasok":     "vendor",
	"supplier":    "vendor",
	"image":       "image",
	"gambar":      "image",
	"foto":        "image",
}

// FromRow normalizes one raw source row, keyed by the source's own column
// names, into a Product. Unrecognized columns are preserved verbatim in
// Extra. Malformed numeric text parses as 0; a row with an empty id or an
// empty name is rejected with ErrIncompleteRow.
func FromRow(row map[string]string) (Product, error) {
	p := Product{}
	for key, value := range row {
		canonical, ok := fieldSynonyms[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[key] = value
			continue
		}
		value = strings.TrimSpace(value)
		switch canonical {
		case "id":
			p.ID = value
		case "name":
			p.Name = value
		case "price":
			p.Price = parseAmount(value)
		case "category":
			p.Category = value
		case "unit":
			p.Unit = value
		case "stock":
			if value != "" {
				n := parseAmount(value)
				p.Stock = &n
			}
		case "cost":
			p.Cost = parseAmount(value)
		case "vendor":
			p.Vendor = value
		case "image":
			p.Image = value
		}
	}
	if p.ID == "" || p.Name == "" {
		return Product{}, ErrIncompleteRow
	}
	if p.Image == "" {
		p.Image = DefaultImage(p.ID)
	}
	return p, nil
}

// parseAmount reads an integer amount, tolerating the fractional tail that
// spreadsheet exports sometimes add. Anything unparseable is 0.
func parseAmount(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
