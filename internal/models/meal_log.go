package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringArray is a string slice stored as a JSON array column
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// MealLog is one logged serving of a catalog food with its composed totals.
// Catalog ids are stored as given; the catalog may change after logging.
type MealLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_meal_logs_user_eaten,priority:1" json:"user_id"`
	FoodID    string         `gorm:"size:100;not null" json:"food_id"`
	FoodName  string         `gorm:"size:255;not null" json:"food_name"`
	AddonIDs  StringArray    `gorm:"type:text;not null" json:"addon_ids"`
	Quantity  float64        `gorm:"not null" json:"quantity"`
	Calories  int            `gorm:"not null" json:"calories"`
	Protein   float64        `json:"protein"`
	Carbs     float64        `json:"carbs"`
	Fat       float64        `json:"fat"`
	Fiber     float64        `json:"fiber"`
	Sugar     float64        `json:"sugar"`
	EatenAt   time.Time      `gorm:"not null;index:idx_meal_logs_user_eaten,priority:2" json:"eaten_at"`
}

// BeforeCreate assigns an id when the caller did not.
func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
