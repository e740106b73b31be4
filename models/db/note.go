package dbmodels

type Note struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Text          string
	AuthorID      string `gorm:"type:varchar(36)"`
}
