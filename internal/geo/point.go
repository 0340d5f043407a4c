package geo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Point is a geographic coordinate pair stored as a single MySQL POINT
// column. Encoding goes through POINT(?, ?) with both ordinates bound;
// decoding goes through the ST_X/ST_Y accessors inside the read query, so
// the stored value is never parsed client-side. There is no partial form:
// either both ordinates are encoded or no spatial write happens.
type Point struct {
	Lat float64
	Lng float64
}

// Expr renders the parameter-bound POINT literal for this pair.
func (p Point) Expr() clause.Expr {
	return gorm.Expr("POINT(?, ?)", p.Lat, p.Lng)
}

// GormValue lets GORM encode the pair transparently on insert.
func (p Point) GormValue(_ context.Context, _ *gorm.DB) clause.Expr {
	return p.Expr()
}

// OrdinateColumns returns the projection expressions that decode a stored
// point column back into lat and lng. column is a code-controlled
// identifier, never user input.
func OrdinateColumns(column string) (lat, lng string) {
	return fmt.Sprintf("ST_X(%s)", column), fmt.Sprintf("ST_Y(%s)", column)
}
