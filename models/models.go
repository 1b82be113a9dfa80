// Package models defines the gorm-mapped records shared by the entity stores.
// Each struct maps one-to-one onto a table created by the SQL migrations in
// package db.
package models

import "time"

// User is a registered account. Password always holds a bcrypt digest once
// the row exists; it is never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the table name used by the migrations.
func (User) TableName() string { return "users" }

// Realty is a managed property with an address and a per-liter water cost.
// UserID is nil when the realty has no owner or its owner was deleted.
type Realty struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	ZipCode      string    `json:"zipCode"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	LiterCost    string    `json:"literCost"`
	UserID       *uint     `gorm:"index" json:"userId"`
	User         *User     `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName pins the table name used by the migrations.
func (Realty) TableName() string { return "realties" }

// Zone is a named sub-area of a realty (a kitchen, a garden).
type Zone struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	RealtyID  *uint     `gorm:"index" json:"realtyId"`
	Realty    *Realty   `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the table name used by the migrations.
func (Zone) TableName() string { return "zones" }

// Waterpoint is a measurement location, optionally placed in a zone.
type Waterpoint struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	ZoneID    *uint     `gorm:"index" json:"zoneId"`
	Zone      *Zone     `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the table name used by the migrations.
func (Waterpoint) TableName() string { return "waterpoints" }

// All lists every model in dependency order, for schema bootstrapping in tests.
func All() []any {
	return []any{&User{}, &Realty{}, &Zone{}, &Waterpoint{}}
}
