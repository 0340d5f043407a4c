package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	apperrors "cathub/internal/errors"
	"cathub/internal/model"
)

func strPtr(s string) *string        { return &s }
func f64Ptr(f float64) *float64      { return &f }
func uintPtr(u uint) *uint           { return &u }
func timePtr(t time.Time) *time.Time { return &t }

func TestBuildCatUpdate_AssignmentsPerPresentField(t *testing.T) {
	birthdate := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		patch       model.PutCat
		wantColumns []string
	}{
		{
			name:        "single field",
			patch:       model.PutCat{CatName: strPtr("Musti2")},
			wantColumns: []string{"cat_name"},
		},
		{
			name: "all fields",
			patch: model.PutCat{
				CatName:   strPtr("Musti"),
				Weight:    f64Ptr(4.2),
				Filename:  strPtr("m.jpg"),
				Birthdate: timePtr(birthdate),
				Owner:     uintPtr(7),
				Lat:       f64Ptr(60.2),
				Lng:       f64Ptr(24.9),
			},
			wantColumns: []string{"cat_name", "weight", "filename", "birthdate", "owner", "coords"},
		},
		{
			name:        "absent fields contribute nothing",
			patch:       model.PutCat{Weight: f64Ptr(3.0), Filename: strPtr("x.jpg")},
			wantColumns: []string{"weight", "filename"},
		},
		{
			name:        "lat alone produces no coordinate clause",
			patch:       model.PutCat{CatName: strPtr("Musti"), Lat: f64Ptr(60.2)},
			wantColumns: []string{"cat_name"},
		},
		{
			name:        "lng alone produces no coordinate clause",
			patch:       model.PutCat{CatName: strPtr("Musti"), Lng: f64Ptr(24.9)},
			wantColumns: []string{"cat_name"},
		},
		{
			name:        "empty patch queues nothing",
			patch:       model.PutCat{},
			wantColumns: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildCatUpdate(tt.patch, 5, model.Principal{UserID: 3, Role: model.RoleAdmin})
			assert.ElementsMatch(t, tt.wantColumns, b.columns())
		})
	}
}

func TestBuildCatUpdate_CoordinatePairEncoding(t *testing.T) {
	patch := model.PutCat{Lat: f64Ptr(60.2), Lng: f64Ptr(24.9)}
	b := buildCatUpdate(patch, 5, model.Principal{UserID: 1, Role: model.RoleAdmin})

	require.Len(t, b.sets, 1)
	assert.Equal(t, "coords", b.sets[0].column)

	expr, ok := b.sets[0].value.(clause.Expr)
	require.True(t, ok, "coordinate assignment must be a bound expression")
	assert.Equal(t, "POINT(?, ?)", expr.SQL)
	assert.Equal(t, []interface{}{60.2, 24.9}, expr.Vars)
}

func TestBuildCatUpdate_OwnershipPredicate(t *testing.T) {
	tests := []struct {
		name      string
		actor     model.Principal
		wantConds []condition
	}{
		{
			name:  "non-admin is scoped to owned rows",
			actor: model.Principal{UserID: 3, Role: model.RoleUser},
			wantConds: []condition{
				{query: "cat_id = ?", args: []any{uint(5)}},
				{query: "owner = ?", args: []any{uint(3)}},
			},
		},
		{
			name:  "admin bypasses ownership entirely",
			actor: model.Principal{UserID: 3, Role: model.RoleAdmin},
			wantConds: []condition{
				{query: "cat_id = ?", args: []any{uint(5)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildCatUpdate(model.PutCat{CatName: strPtr("Musti2")}, 5, tt.actor)
			assert.Equal(t, tt.wantConds, b.conds)
		})
	}
}

func TestUpdateBuilder_RefusesEmptySet(t *testing.T) {
	b := buildCatUpdate(model.PutCat{}, 5, model.Principal{UserID: 3, Role: model.RoleUser})
	require.True(t, b.Empty())

	// Exec must fail before reaching the store; a nil handle proves it.
	affected, err := b.Exec(context.Background(), nil)
	assert.Zero(t, affected)
	assert.True(t, apperrors.IsBadRequest(err))
	assert.EqualError(t, err, "no fields to update")
}

func TestUpdateBuilder_HalfPairStillRefusedWhenAlone(t *testing.T) {
	// A payload carrying only one ordinate queues no assignments at all, so
	// execution fails the same way as a structurally empty payload.
	b := buildCatUpdate(model.PutCat{Lat: f64Ptr(60.2)}, 5, model.Principal{UserID: 3, Role: model.RoleUser})
	assert.True(t, b.Empty())
}

func TestBuildUserUpdate(t *testing.T) {
	tests := []struct {
		name        string
		patch       model.PutUser
		wantColumns []string
	}{
		{
			name:        "name and email",
			patch:       model.PutUser{UserName: strPtr("Anna"), Email: strPtr("anna@example.com")},
			wantColumns: []string{"user_name", "email"},
		},
		{
			name:        "password hash and role",
			patch:       model.PutUser{PasswordHash: strPtr("$2a$12$abc"), Role: strPtr(model.RoleAdmin)},
			wantColumns: []string{"password_hash", "role"},
		},
		{
			name:        "empty",
			patch:       model.PutUser{},
			wantColumns: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildUserUpdate(tt.patch, 9)
			assert.ElementsMatch(t, tt.wantColumns, b.columns())
			assert.Equal(t, []condition{{query: "user_id = ?", args: []any{uint(9)}}}, b.conds)
		})
	}
}
