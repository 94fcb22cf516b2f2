package models

import "time"

// AppState holds the structure of the persisted app record
type AppState struct {
	Meta     Meta     `json:"meta" bson:"meta"`
	Template Template `json:"template" bson:"template"`
	Checks   []Check  `json:"checks" bson:"checks"`
}

// Meta identifies the app record and when it was last written
type Meta struct {
	AppID     string    `json:"appId" bson:"appId"`
	Version   string    `json:"version" bson:"version"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Touch refreshes the updatedAt stamp, called by the store before every write
func (s *AppState) Touch(now time.Time) {
	s.Meta.UpdatedAt = now.UTC()
}
