package flyer

import (
	"fmt"

	"flyerstudio/internal/domain/services"
)

// groupImageFormat is where the rendering pipeline expects group
// images to live. The literal prefix and extension must not change.
const groupImageFormat = "imagens_produtos/%s.png"

// deriveGroupImage computes a group's display image path from the code
// of the first product in its ordered list. Returns empty when the
// group has no products; callers apply it exactly once, at group
// construction, and only when no explicit image was supplied.
func deriveGroupImage(products []services.ProductPayload) string {
	if len(products) == 0 {
		return ""
	}
	return fmt.Sprintf(groupImageFormat, products[0].Code)
}
