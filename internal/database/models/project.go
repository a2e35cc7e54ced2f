package models

// Project is an optional cost target a day entry can reference
type Project struct {
	BaseModel
	Name   string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Active bool   `json:"active" gorm:"not null;default:true"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
