package models

// RegistrationMethod records how an account entered the system.
type RegistrationMethod string

const (
	RegistrationInvited   RegistrationMethod = "INV"
	RegistrationRequested RegistrationMethod = "REQ"
	RegistrationSelf      RegistrationMethod = "SEL"
)

// SkillProficiency levels a member can claim for a skill.
type SkillProficiency string

const (
	ProficiencyBeginner     SkillProficiency = "beginner"
	ProficiencyIntermediate SkillProficiency = "intermediate"
	ProficiencyAdvanced     SkillProficiency = "advanced"
	ProficiencyExpert       SkillProficiency = "expert"
)

// UserRoleTag is a free-form role a member advertises on their profile
// (mentor, speaker, etc). Stored as a JSON list on the user.
type UserRoleTag string

const (
	RoleTagMentor    UserRoleTag = "mentor"
	RoleTagMentee    UserRoleTag = "mentee"
	RoleTagSpeaker   UserRoleTag = "speaker"
	RoleTagOrganiser UserRoleTag = "organiser"
)

func ValidProficiency(value string) bool {
	switch SkillProficiency(value) {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

func ValidRoleTag(value string) bool {
	switch UserRoleTag(value) {
	case RoleTagMentor, RoleTagMentee, RoleTagSpeaker, RoleTagOrganiser:
		return true
	}
	return false
}
