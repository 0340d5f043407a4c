package model

import "time"

// Cat is the hydrated read shape of a cat. Lat and Lng are decoded from the
// stored point column by the read queries and are always finite scalars;
// Owner is always the embedded form.
type Cat struct {
	CatID     uint      `json:"cat_id"`
	CatName   string    `json:"cat_name"`
	Weight    float64   `json:"weight"`
	Filename  string    `json:"filename"`
	Birthdate time.Time `json:"birthdate"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Owner     OwnerRef  `json:"owner"`
}

// PostCat is the cat write shape: every field required, owner as a bare id.
type PostCat struct {
	CatName   string    `json:"cat_name"`
	Weight    float64   `json:"weight"`
	Filename  string    `json:"filename"`
	Birthdate time.Time `json:"birthdate"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Owner     OwnerRef  `json:"owner"`
}

// PutCat is the sparse cat update shape. A nil field means "do not touch".
// The coordinate pair only takes effect when both Lat and Lng are present.
type PutCat struct {
	CatName   *string    `json:"cat_name,omitempty"`
	Weight    *float64   `json:"weight,omitempty"`
	Filename  *string    `json:"filename,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Lat       *float64   `json:"lat,omitempty"`
	Lng       *float64   `json:"lng,omitempty"`
	Owner     *uint      `json:"owner,omitempty"`
}
