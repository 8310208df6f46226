package services

import (
	"fmt"
	"time"

	"connect_backend/internal/config"
	"connect_backend/internal/email"
	"connect_backend/internal/logger"
	"connect_backend/internal/models"
	"connect_backend/internal/repositories"
	"connect_backend/internal/services/dto"
	"connect_backend/pkg/apperrors"
)

// InviteMemberRequest is the moderator form for inviting a member directly.
type InviteMemberRequest struct {
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
}

type ModerationService interface {
	ListModerators() ([]dto.ModeratorResponse, error)
	ListPendingApplications() ([]dto.ApplicationResponse, error)
	ListAbuseReports() ([]dto.AbuseReportResponse, error)
	ListLogs(limit int) ([]dto.ModerationLogResponse, error)

	// InviteMember creates an inactive invited account and emails the
	// activation link to the new member.
	InviteMember(moderatorID string, req *InviteMemberRequest) error
}

type ModerationServiceImpl struct {
	userRepo       repositories.UserRepository
	moderationRepo repositories.ModerationRepository
	emailProvider  email.Provider
	cfg            *config.Config
}

func NewModerationService(
	userRepo repositories.UserRepository,
	moderationRepo repositories.ModerationRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) ModerationService {
	return &ModerationServiceImpl{
		userRepo:       userRepo,
		moderationRepo: moderationRepo,
		emailProvider:  emailProvider,
		cfg:            cfg,
	}
}

func (s *ModerationServiceImpl) ListModerators() ([]dto.ModeratorResponse, error) {
	moderators, err := s.userRepo.FindActiveModerators()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.ModeratorResponse, 0, len(moderators))
	for _, m := range moderators {
		resp = append(resp, dto.ModeratorResponse{
			ID:       m.ID,
			Email:    m.Email,
			FullName: m.FullName(),
		})
	}
	return resp, nil
}

func (s *ModerationServiceImpl) ListPendingApplications() ([]dto.ApplicationResponse, error) {
	users, err := s.moderationRepo.FindPendingApplications()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.ApplicationResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ApplicationResponse{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  u.FullName(),
			Comments:  u.ApplicationComments,
			AppliedAt: u.AppliedAt,
		})
	}
	return resp, nil
}

func (s *ModerationServiceImpl) ListAbuseReports() ([]dto.AbuseReportResponse, error) {
	reports, err := s.moderationRepo.FindOpenAbuseReports()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.AbuseReportResponse, 0, len(reports))
	for _, r := range reports {
		item := dto.AbuseReportResponse{
			ID:        r.ID,
			Comments:  r.Comments,
			CreatedAt: r.CreatedAt,
		}
		if r.LoggedBy != nil {
			item.LoggedBy = r.LoggedBy.FullName()
		}
		if r.LoggedAgainst != nil {
			item.LoggedAgainst = r.LoggedAgainst.FullName()
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *ModerationServiceImpl) ListLogs(limit int) ([]dto.ModerationLogResponse, error) {
	records, err := s.moderationRepo.FindLogs(limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.ModerationLogResponse, 0, len(records))
	for _, rec := range records {
		item := dto.ModerationLogResponse{
			ID:        rec.ID,
			MsgType:   string(rec.MsgType),
			Comment:   rec.Comment,
			CreatedAt: rec.CreatedAt,
		}
		if rec.Moderator != nil {
			item.Moderator = rec.Moderator.FullName()
		}
		if rec.TargetUser != nil {
			item.TargetUser = rec.TargetUser.FullName()
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *ModerationServiceImpl) InviteMember(moderatorID string, req *InviteMemberRequest) error {
	user, err := issueInactiveUser(req.Email, req.FirstName, req.LastName)
	if err != nil {
		return err
	}

	now := time.Now()
	user.RegistrationMethod = models.RegistrationInvited
	user.AppliedAt = &now

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	activationURL := fmt.Sprintf("%s/accounts/activate/%s", s.cfg.Site.BaseURL, user.AuthToken)
	subject := fmt.Sprintf("You have been invited to %s", s.cfg.Site.Name)

	if err := s.emailProvider.SendTemplate(
		[]string{user.Email}, subject, email.TemplateInvitation, email.TemplateData{
			"SiteName":  s.cfg.Site.Name,
			"URL":       activationURL,
			"Recipient": user.FullName(),
		},
	); err != nil {
		// The account exists either way; the moderator can re-send later
		logger.WithError(err).Warn("failed to send invitation email", "user_id", user.ID)
	}

	if err := s.moderationRepo.LogEvent(&models.ModerationLogRecord{
		ModeratorID:  moderatorID,
		TargetUserID: user.ID,
		MsgType:      models.LogInvitation,
		Comment:      "Invited " + user.Email,
	}); err != nil {
		logger.WithError(err).Warn("failed to write moderation log", "user_id", user.ID)
	}

	return nil
}
