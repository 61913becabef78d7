package domain

// CatalogRecord is a product as the external catalog returns it. The catalog
// owns these fields; the engine only ever writes back through ProductUpdate.
type CatalogRecord struct {
	ID          string
	Name        string
	SKU         string
	Description string
	ImagesCount int
}

// ProductUpdate is the write payload for one catalog record. Nil fields leave
// the corresponding catalog field untouched; Images distinguishes "replace
// with this list" (non-nil) from "do not touch" (nil), so clearing images is
// an explicit empty non-nil slice.
type ProductUpdate struct {
	Description *string     `json:"description,omitempty"`
	Images      *[]ImageRef `json:"images,omitempty"`
	Tags        []TagRef    `json:"tags,omitempty"`
}

type ImageRef struct {
	Src string `json:"src"`
}

type TagRef struct {
	Name string `json:"name"`
}

// Empty reports whether the payload would be a no-op write.
func (u ProductUpdate) Empty() bool {
	return u.Description == nil && u.Images == nil && len(u.Tags) == 0
}
