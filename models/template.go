package models

// Template holds the versioned definition of the checklist sections
type Template struct {
	Revision int       `json:"rev" bson:"rev"`
	Name     string    `json:"name" bson:"name"`
	Sections []Section `json:"sections" bson:"sections"`
}

// Section holds a titled group of item definitions
type Section struct {
	ID    string           `json:"id" bson:"id"`
	Title string           `json:"title" bson:"title"`
	Items []ItemDefinition `json:"items" bson:"items"`
}

// ItemDefinition holds a single checklist item as defined by the template
type ItemDefinition struct {
	ID              string   `json:"id" bson:"id"`
	Label           string   `json:"label" bson:"label"`
	DefaultSeverity Severity `json:"defaultSeverity" bson:"defaultSeverity"`
}
