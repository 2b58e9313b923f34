// Package flatfile reads the semicolon-separated catalog export: a header
// row naming the columns, then one product per line.
package flatfile

import (
	"strings"

	"github.com/samudrapos/kasir-service/internal/catalog/domain"
)

const delimiter = ";"

// Parse turns flat-file content into products. Header names go through the
// shared field-synonym normalization, so localized spellings land on the
// canonical fields and unknown columns survive as extra attributes.
//
// Tolerated input damage: blank lines anywhere, short rows (missing trailing
// columns read as empty), malformed numeric text (reads as 0). A row whose
// normalization fails, for lack of an id or a name, is skipped on its own;
// it does not fail the batch.
func Parse(content string) []domain.Product {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var headers []string
	var products []domain.Product
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, delimiter)
		if headers == nil {
			headers = make([]string, len(fields))
			for i, h := range fields {
				headers[i] = strings.TrimSpace(h)
			}
			continue
		}

		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = strings.TrimSpace(fields[i])
			} else {
				row[h] = ""
			}
		}
		p, err := domain.FromRow(row)
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return products
}
