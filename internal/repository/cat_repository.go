package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "cathub/internal/errors"
	"cathub/internal/geo"
	"cathub/internal/model"
)

// catRecord mirrors the cats relation. Coords is write-only: inserts encode
// it through geo.Point and reads decode it with the ST_X/ST_Y projections
// instead of scanning the column.
type catRecord struct {
	CatID     uint        `gorm:"column:cat_id;primaryKey;autoIncrement"`
	CatName   string      `gorm:"column:cat_name;size:255;not null"`
	Weight    float64     `gorm:"column:weight;not null"`
	Filename  string      `gorm:"column:filename;size:255;not null"`
	Birthdate time.Time   `gorm:"column:birthdate;type:date;not null"`
	Coords    geo.Point   `gorm:"column:coords;type:point;not null"`
	Owner     uint        `gorm:"column:owner;not null;index"`
	OwnerUser *model.User `gorm:"foreignKey:Owner;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName maps catRecord onto the cats relation.
func (catRecord) TableName() string {
	return "cats"
}

// catRow is the raw joined row produced by the hydrating read queries. The
// owner aggregate arrives as a single JSON scalar built store-side.
type catRow struct {
	CatID     uint
	CatName   string
	Weight    float64
	Filename  string
	Birthdate time.Time
	Lat       float64
	Lng       float64
	Owner     []byte
}

// catSelect joins cats to users, decodes the point column and aggregates the
// owner into one JSON scalar, so every read returns fully hydrated rows in a
// single statement.
var catSelect = func() string {
	lat, lng := geo.OrdinateColumns("c.coords")
	return fmt.Sprintf(`
		SELECT
			c.cat_id, c.cat_name, c.weight, c.filename, c.birthdate,
			%s AS lat, %s AS lng,
			JSON_OBJECT('user_id', u.user_id, 'user_name', u.user_name) AS owner
		FROM cats AS c
		JOIN users AS u ON c.owner = u.user_id`, lat, lng)
}()

// CatRepository defines cat persistence operations.
type CatRepository interface {
	List(ctx context.Context) ([]model.Cat, error)
	FindByID(ctx context.Context, id uint) (*model.Cat, error)
	Create(ctx context.Context, cat *model.PostCat) (uint, error)
	Update(ctx context.Context, patch model.PutCat, id uint, actor model.Principal) error
	Delete(ctx context.Context, id uint, actor model.Principal) error
}

type catRepository struct {
	db *gorm.DB
}

// NewCatRepository builds a GORM-backed cat repository.
func NewCatRepository(db *gorm.DB) CatRepository {
	return &catRepository{db: db}
}

// List returns every cat, hydrated, ordered by id.
func (r *catRepository) List(ctx context.Context) ([]model.Cat, error) {
	var rows []catRow
	if err := r.db.WithContext(ctx).Raw(catSelect + " ORDER BY c.cat_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("no cats found")
	}
	cats := make([]model.Cat, 0, len(rows))
	for _, row := range rows {
		cats = append(cats, hydrateCat(row))
	}
	return cats, nil
}

// FindByID returns a single hydrated cat.
func (r *catRepository) FindByID(ctx context.Context, id uint) (*model.Cat, error) {
	var rows []catRow
	if err := r.db.WithContext(ctx).Raw(catSelect+" WHERE c.cat_id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("no cat found")
	}
	cat := hydrateCat(rows[0])
	return &cat, nil
}

// Create inserts a full cat record and returns the generated id. The owner
// is forwarded as a bare id; the store enforces that it references an
// existing user.
func (r *catRepository) Create(ctx context.Context, cat *model.PostCat) (uint, error) {
	rec := catRecord{
		CatName:   cat.CatName,
		Weight:    cat.Weight,
		Filename:  cat.Filename,
		Birthdate: cat.Birthdate,
		Coords:    geo.Point{Lat: cat.Lat, Lng: cat.Lng},
		Owner:     cat.Owner.ID(),
	}
	res := r.db.WithContext(ctx).Create(&rec)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.BadRequest("no cats added")
	}
	return rec.CatID, nil
}

// Update applies a sparse patch to one cat. Non-admin actors are scoped to
// rows they own, so an update against someone else's cat affects zero rows
// and surfaces as the same bad-request outcome as a missing id.
func (r *catRepository) Update(ctx context.Context, patch model.PutCat, id uint, actor model.Principal) error {
	b := buildCatUpdate(patch, id, actor)
	affected, err := b.Exec(ctx, r.db)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.BadRequest("no cats updated")
	}
	return nil
}

// buildCatUpdate translates a sparse patch into queued clauses. The
// coordinate pair is only assigned when both ordinates are present; a half
// pair is dropped without error, matching the documented update semantics.
func buildCatUpdate(patch model.PutCat, id uint, actor model.Principal) *updateBuilder {
	b := newUpdate("cats")
	if patch.CatName != nil {
		b.Set("cat_name", *patch.CatName)
	}
	if patch.Weight != nil {
		b.Set("weight", *patch.Weight)
	}
	if patch.Filename != nil {
		b.Set("filename", *patch.Filename)
	}
	if patch.Birthdate != nil {
		b.Set("birthdate", *patch.Birthdate)
	}
	if patch.Owner != nil {
		b.Set("owner", *patch.Owner)
	}
	if patch.Lat != nil && patch.Lng != nil {
		b.Set("coords", geo.Point{Lat: *patch.Lat, Lng: *patch.Lng}.Expr())
	}
	b.Where("cat_id = ?", id)
	if !actor.IsAdmin() {
		b.Where("owner = ?", actor.UserID)
	}
	return b
}

// Delete removes one cat. Non-admin actors may only delete cats they own.
func (r *catRepository) Delete(ctx context.Context, id uint, actor model.Principal) error {
	tx := r.db.WithContext(ctx).Where("cat_id = ?", id)
	if !actor.IsAdmin() {
		tx = tx.Where("owner = ?", actor.UserID)
	}
	res := tx.Delete(&catRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.BadRequest("no cats deleted")
	}
	return nil
}

// hydrateCat maps a raw joined row into the read shape.
func hydrateCat(row catRow) model.Cat {
	return model.Cat{
		CatID:     row.CatID,
		CatName:   row.CatName,
		Weight:    row.Weight,
		Filename:  row.Filename,
		Birthdate: row.Birthdate,
		Lat:       row.Lat,
		Lng:       row.Lng,
		Owner:     model.HydrateOwner(row.Owner),
	}
}
