package model

// Roles recognised by the authorization predicates.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an identity record in the system.
type User struct {
	UserID       uint   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserName     string `json:"user_name" gorm:"column:user_name;size:255;not null"`
	Email        string `json:"email" gorm:"column:email;uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;size:255;not null"` // Never expose in JSON
	Role         string `json:"role,omitempty" gorm:"column:role;size:50;default:'user'"`
}

// TableName maps User onto the users relation.
func (User) TableName() string {
	return "users"
}

// PostUser is the user write shape: every field required. PasswordHash
// arrives already hashed from the upstream registration path.
type PostUser struct {
	UserName     string `json:"user_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// PutUser is the sparse user update shape. A nil field means "do not touch".
type PutUser struct {
	UserName     *string `json:"user_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	PasswordHash *string `json:"-"`
	Role         *string `json:"role,omitempty"`
}
