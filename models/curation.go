package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Curation is a user-owned named list of saved places. Entries snapshot the
// normalized place fields at save time, so the search engine itself never
// touches the database.
type Curation struct {
	gorm.Model
	UserID      uint            `json:"userId" gorm:"not null;index"`
	User        User            `json:"-" gorm:"foreignKey:UserID"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	Tags        pq.StringArray  `json:"tags" gorm:"type:text[]"`
	CoverImage  string          `json:"coverImage"`
	ShareSlug   string          `json:"shareSlug" gorm:"unique"`
	IsPublic    bool            `json:"isPublic" gorm:"default:false"`
	Entries     []CurationEntry `json:"entries" gorm:"foreignKey:CurationID"`
}

// CurationEntry is one saved place inside a curation. Nullable columns mirror
// the explicitly-absent fields of the unified result.
type CurationEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time `json:"createdAt"`
	CurationID  uint      `json:"curationId" gorm:"not null;index"`
	PlaceID     string    `json:"placeId" gorm:"not null"`
	DisplayName *string   `json:"displayName"`
	Address     *string   `json:"address"`
	Latitude    *float64  `json:"latitude" gorm:"type:decimal(10,8)"`
	Longitude   *float64  `json:"longitude" gorm:"type:decimal(11,8)"`
	Rating      *float64  `json:"rating" gorm:"type:decimal(3,2)"`
	PriceLevel  *string   `json:"priceLevel"`
	PrimaryType *string   `json:"primaryType"`
	Note        string    `json:"note" gorm:"type:text"`
}
