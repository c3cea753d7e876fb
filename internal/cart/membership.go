package cart

import (
	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/domain"
)

// Lookup answers whether a product is currently in the cart and which
// line represents it. It is a pure derivation over the snapshot and must
// be recomputed whenever the snapshot changes. A well-formed snapshot
// never holds two lines for one product; if the server returns
// duplicates the first match wins and the anomaly is logged.
func Lookup(logger *zap.Logger, snapshot domain.CartSnapshot, productID string) (domain.CartLine, bool) {
	var match domain.CartLine
	found := false

	for _, line := range snapshot {
		if line.ProductID != productID {
			continue
		}
		if found {
			logger.Warn("Duplicate cart lines for product",
				zap.String("product_id", productID),
				zap.String("kept_line_id", match.LineID),
				zap.String("duplicate_line_id", line.LineID),
			)
			continue
		}
		match = line
		found = true
	}

	return match, found
}
