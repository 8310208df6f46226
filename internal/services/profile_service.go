package services

import (
	"net/url"

	"connect_backend/internal/logger"
	"connect_backend/internal/models"
	"connect_backend/internal/repositories"
	"connect_backend/internal/services/dto"
	"connect_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)

	// SaveProfile updates the base profile fields and replaces the full
	// skill and link sets with the submitted rows.
	SaveProfile(userID string, req *dto.SaveProfileRequest) error
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	brandRepo   repositories.BrandRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	brandRepo repositories.BrandRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		brandRepo:   brandRepo,
	}
}

func (s *ProfileServiceImpl) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	skills, err := s.profileRepo.FindSkillsByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	links, err := s.profileRepo.FindLinksByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ProfileResponse{
		User:   toUserResponse(user),
		Skills: make([]dto.SkillResponse, 0, len(skills)),
		Links:  make([]dto.LinkResponse, 0, len(links)),
	}

	for _, skill := range skills {
		resp.Skills = append(resp.Skills, dto.SkillResponse{
			Skill:       skill.Skill,
			Proficiency: string(skill.Proficiency),
		})
	}

	for _, link := range links {
		lr := dto.LinkResponse{Anchor: link.Anchor, URL: link.URL}
		if link.Brand != nil {
			lr.BrandName = link.Brand.Name
			lr.BrandIcon = link.Brand.Icon
		}
		resp.Links = append(resp.Links, lr)
	}

	return resp, nil
}

func (s *ProfileServiceImpl) SaveProfile(userID string, req *dto.SaveProfileRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Bio = req.Bio
	user.SetRoles(req.Roles)

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	skills := pairedRecords(req.Skills,
		func(row dto.SkillRow) string { return row.Skill },
		func(row dto.SkillRow) string { return row.Proficiency },
		func(row dto.SkillRow) models.UserSkill {
			return models.UserSkill{
				UserID:      userID,
				Skill:       row.Skill,
				Proficiency: models.SkillProficiency(row.Proficiency),
			}
		})

	links := pairedRecords(req.Links,
		func(row dto.LinkRow) string { return row.Anchor },
		func(row dto.LinkRow) string { return row.URL },
		func(row dto.LinkRow) models.UserLink {
			return models.UserLink{
				UserID: userID,
				Anchor: row.Anchor,
				URL:    row.URL,
			}
		})

	if err := s.profileRepo.ReplaceSkills(userID, skills); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.profileRepo.ReplaceLinks(userID, links); err != nil {
		return apperrors.InternalError(err)
	}

	// IDs are backfilled into the slice on insert, so the matcher walks the
	// committed records in submission order.
	s.matchBrands(links)

	return nil
}

// pairedRecords implements the shared paired-item filter: a row survives only
// when both paired values are present. A fully empty row is an unfilled
// optional slot; a half-filled row was already rejected by validation.
func pairedRecords[Row any, Rec any](
	rows []Row,
	item func(Row) string,
	counterpart func(Row) string,
	build func(Row) Rec,
) []Rec {
	records := make([]Rec, 0, len(rows))
	for _, row := range rows {
		if item(row) == "" || counterpart(row) == "" {
			continue
		}
		records = append(records, build(row))
	}
	return records
}

// matchBrands annotates each link whose URL host exactly matches a known
// brand domain. Failures are isolated per link and never surface to the
// caller: an unmatched or unmatchable link simply stays unannotated.
func (s *ProfileServiceImpl) matchBrands(links []models.UserLink) []models.UserLink {
	for _, link := range links {
		parsed, err := url.Parse(link.URL)
		if err != nil || parsed.Host == "" {
			continue
		}

		brand, err := s.brandRepo.FindByDomain(parsed.Host)
		if err != nil {
			if !apperrors.Is(err, repositories.ErrBrandNotFound) {
				logger.WithError(err).Warn("brand lookup failed", "link_id", link.ID)
			}
			continue
		}

		if err := s.profileRepo.SetLinkBrand(link.ID, brand.ID); err != nil {
			logger.WithError(err).Warn("failed to persist brand annotation", "link_id", link.ID)
			continue
		}
	}
	return links
}
