package model

import "encoding/json"

// OwnerSummary is the subset of a user embedded inside a hydrated cat.
type OwnerSummary struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

// OwnerRef is the polymorphic owner field of a cat. On the write path it is
// a bare numeric user id; on the read path it is an embedded owner summary.
// The two forms never mix: repositories construct the id form when writing
// and the embedded form when hydrating, so the JSON representation is
// intentionally asymmetric (number out of write shapes, object out of reads).
type OwnerRef struct {
	id       uint
	embedded *OwnerSummary
}

// OwnerID builds the id (write) form.
func OwnerID(id uint) OwnerRef {
	return OwnerRef{id: id}
}

// EmbeddedOwner builds the embedded (read) form.
func EmbeddedOwner(s OwnerSummary) OwnerRef {
	return OwnerRef{embedded: &s}
}

// HydrateOwner parses the JSON owner aggregate produced by the read queries.
// A missing or malformed aggregate yields an empty embedded owner rather
// than an error: reads must not fail over display data.
func HydrateOwner(raw []byte) OwnerRef {
	var s OwnerSummary
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return EmbeddedOwner(OwnerSummary{})
	}
	return EmbeddedOwner(s)
}

// IsEmbedded reports whether the reference carries an owner summary.
func (o OwnerRef) IsEmbedded() bool {
	return o.embedded != nil
}

// ID returns the referenced user id in either form.
func (o OwnerRef) ID() uint {
	if o.embedded != nil {
		return o.embedded.UserID
	}
	return o.id
}

// Summary returns the embedded owner, if present.
func (o OwnerRef) Summary() (OwnerSummary, bool) {
	if o.embedded == nil {
		return OwnerSummary{}, false
	}
	return *o.embedded, true
}

// MarshalJSON emits a bare number for the id form and an object for the
// embedded form.
func (o OwnerRef) MarshalJSON() ([]byte, error) {
	if o.embedded != nil {
		return json.Marshal(o.embedded)
	}
	return json.Marshal(o.id)
}

// UnmarshalJSON accepts either representation.
func (o *OwnerRef) UnmarshalJSON(data []byte) error {
	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		*o = OwnerID(id)
		return nil
	}
	var s OwnerSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = EmbeddedOwner(s)
	return nil
}
