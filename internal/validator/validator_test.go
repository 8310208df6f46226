package validator

import (
	"testing"

	"connect_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RequestInvitation(t *testing.T) {
	v := New()

	valid := dto.RequestInvitationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Comments:  "I run the local Go meetup",
	}
	assert.NoError(t, v.Validate(&valid))

	missing := dto.RequestInvitationRequest{Email: "ada@example.com"}
	err := v.Validate(&missing)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "first_name")
	assert.Contains(t, vErr.Errors, "last_name")

	badEmail := valid
	badEmail.Email = "not-an-email"
	err = v.Validate(&badEmail)
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "email")
}

func TestValidate_ActivateAccount_PasswordConfirmation(t *testing.T) {
	v := New()

	req := dto.ActivateAccountRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Password:        "hunter22hunter22",
		ConfirmPassword: "different",
	}
	err := v.Validate(&req)
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "confirm_password")

	req.ConfirmPassword = req.Password
	assert.NoError(t, v.Validate(&req))
}

func TestValidate_SkillRows(t *testing.T) {
	v := New()

	base := dto.SaveProfileRequest{FirstName: "Ada", LastName: "Lovelace"}

	// Both fields empty: an unfilled optional slot, the form passes.
	bothEmpty := base
	bothEmpty.Skills = []dto.SkillRow{{}}
	assert.NoError(t, v.Validate(&bothEmpty))

	// Skill without proficiency: rejected.
	halfFilled := base
	halfFilled.Skills = []dto.SkillRow{{Skill: "Go"}}
	err := v.Validate(&halfFilled)
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "proficiency")

	// Proficiency without skill: rejected too.
	otherHalf := base
	otherHalf.Skills = []dto.SkillRow{{Proficiency: "beginner"}}
	err = v.Validate(&otherHalf)
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "skill")

	// Unknown proficiency level: rejected.
	unknown := base
	unknown.Skills = []dto.SkillRow{{Skill: "Go", Proficiency: "wizard"}}
	err = v.Validate(&unknown)
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "proficiency")

	// A valid pair passes.
	valid := base
	valid.Skills = []dto.SkillRow{{Skill: "Go", Proficiency: "advanced"}}
	assert.NoError(t, v.Validate(&valid))
}

func TestValidate_LinkRows(t *testing.T) {
	v := New()

	base := dto.SaveProfileRequest{FirstName: "Ada", LastName: "Lovelace"}

	bothEmpty := base
	bothEmpty.Links = []dto.LinkRow{{}}
	assert.NoError(t, v.Validate(&bothEmpty))

	anchorOnly := base
	anchorOnly.Links = []dto.LinkRow{{Anchor: "My blog"}}
	err := v.Validate(&anchorOnly)
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "url")

	badURL := base
	badURL.Links = []dto.LinkRow{{Anchor: "My blog", URL: "::not a url"}}
	assert.Error(t, v.Validate(&badURL))

	valid := base
	valid.Links = []dto.LinkRow{{Anchor: "My blog", URL: "https://blog.example.com/posts"}}
	assert.NoError(t, v.Validate(&valid))
}

func TestValidate_RoleTags(t *testing.T) {
	v := New()

	req := dto.SaveProfileRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Roles:     []string{"mentor", "speaker"},
	}
	assert.NoError(t, v.Validate(&req))

	req.Roles = []string{"mentor", "astronaut"}
	err := v.Validate(&req)
	require.Error(t, err)
}
