package dto

// SkillRow is one submitted skill/proficiency pair. Both fields empty means
// an unfilled optional slot and the row is silently dropped; exactly one
// field filled in fails validation via required_with.
type SkillRow struct {
	Skill       string `json:"skill" validate:"max=100,required_with=Proficiency"`
	Proficiency string `json:"proficiency" validate:"required_with=Skill,omitempty,is-proficiency"`
}

// LinkRow is one submitted anchor/URL pair, same optional-slot rules as
// SkillRow.
type LinkRow struct {
	Anchor string `json:"anchor" validate:"max=100,required_with=URL"`
	URL    string `json:"url" validate:"required_with=Anchor,omitempty,url"`
}

// SaveProfileRequest replaces the user's profile fields together with the
// full skill and link sets.
type SaveProfileRequest struct {
	FirstName string     `json:"first_name" validate:"required,max=30"`
	LastName  string     `json:"last_name" validate:"required,max=30"`
	Bio       string     `json:"bio" validate:"max=2000"`
	Roles     []string   `json:"roles" validate:"dive,is-role-tag"`
	Skills    []SkillRow `json:"skills" validate:"dive"`
	Links     []LinkRow  `json:"links" validate:"dive"`
}

type SkillResponse struct {
	Skill       string `json:"skill"`
	Proficiency string `json:"proficiency"`
}

type LinkResponse struct {
	Anchor    string `json:"anchor"`
	URL       string `json:"url"`
	BrandName string `json:"brand_name,omitempty"`
	BrandIcon string `json:"brand_icon,omitempty"`
}

type ProfileResponse struct {
	User   UserResponse    `json:"user"`
	Skills []SkillResponse `json:"skills"`
	Links  []LinkResponse  `json:"links"`
}
