package models

// UserSkill pairs a skill name with a claimed proficiency. The set is owned
// exclusively by the user and replaced wholesale on every profile save, so
// uniqueness within it is a property of the submitted form, not a constraint:
// a form repeating a skill inserts both rows rather than failing the save.
type UserSkill struct {
	BaseModel
	UserID      string           `gorm:"not null;index"`
	Skill       string           `gorm:"not null"`
	Proficiency SkillProficiency `gorm:"type:varchar(20)"`
}

// UserLink pairs anchor text with a URL. BrandID is a best-effort annotation
// set after the save by the brand matcher; nil means no recognised brand.
type UserLink struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Anchor  string `gorm:"not null"`
	URL     string `gorm:"not null"`
	BrandID *string

	Brand *LinkBrand `gorm:"foreignKey:BrandID"`
}

// LinkBrand maps an exact domain to a display identity. Read-only from the
// account workflows; maintained through the admin surface.
type LinkBrand struct {
	BaseModel
	Domain string `gorm:"uniqueIndex;not null"`
	Name   string `gorm:"not null"`
	Icon   string
}
