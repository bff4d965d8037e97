package models

import "time"

// Event holds display metadata for the event a campaign promotes.
type Event struct {
	BaseModel
	Name     string     `json:"name"`
	Logo     string     `json:"logo"`
	Location string     `json:"location"`
	StartsAt *time.Time `json:"starts_at"`
}

// Organization holds display metadata for the sending workspace.
type Organization struct {
	BaseModel
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Website string `json:"website"`
}
