package models

// OpeningHours holds free-form opening hours per weekday, e.g. "11:00-22:00" or "Closed".
type OpeningHours struct {
	Monday    string `gorm:"size:50" json:"monday"`
	Tuesday   string `gorm:"size:50" json:"tuesday"`
	Wednesday string `gorm:"size:50" json:"wednesday"`
	Thursday  string `gorm:"size:50" json:"thursday"`
	Friday    string `gorm:"size:50" json:"friday"`
	Saturday  string `gorm:"size:50" json:"saturday"`
	Sunday    string `gorm:"size:50" json:"sunday"`
}

// Restaurant ids come from the dataset and are never generated by the store.
type Restaurant struct {
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`

	Name        string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	ImageURL    string `gorm:"size:1024" json:"imageURL"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:255" json:"address"`

	OpeningHours OpeningHours `gorm:"embedded;embeddedPrefix:hours_" json:"openingHours"`

	MealTypes      StringList `gorm:"type:text" json:"mealTypes"`
	Budget         string     `gorm:"size:20" json:"budget"`
	CuisineType    string     `gorm:"size:50" json:"cuisineType"`
	DogFriendly    bool       `json:"dogFriendly"`
	PortionSize    string     `gorm:"size:20" json:"portionSize"`
	TargetAudience StringList `gorm:"type:text" json:"targetAudience"`
	OutdoorArea    bool       `json:"outdoorArea"`
	Focus          StringList `gorm:"type:text" json:"focus"`
	Website        string     `gorm:"size:255" json:"website"`
}
