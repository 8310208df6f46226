package models

import "time"

// ModerationLogMsgType identifies the action a log record describes.
type ModerationLogMsgType string

const (
	LogInvitation           ModerationLogMsgType = "INVITATION"
	LogApplicationApproval  ModerationLogMsgType = "APPLICATION_APPROVAL"
	LogApplicationRejection ModerationLogMsgType = "APPLICATION_REJECTION"
	LogAbuseWarning         ModerationLogMsgType = "ABUSE_WARNING"
	LogAbuseBan             ModerationLogMsgType = "ABUSE_BAN"
)

// ModerationLogRecord is an append-only trail of moderator actions.
type ModerationLogRecord struct {
	BaseModel
	ModeratorID  string               `gorm:"not null;index"`
	TargetUserID string               `gorm:"not null;index"`
	MsgType      ModerationLogMsgType `gorm:"type:varchar(30);not null"`
	Comment      string

	Moderator  *User `gorm:"foreignKey:ModeratorID"`
	TargetUser *User `gorm:"foreignKey:TargetUserID"`
}

// AbuseReport is filed by one member against another and reviewed by a
// moderator. Decision stays empty while the report is open.
type AbuseReport struct {
	BaseModel
	LoggedByID      string `gorm:"not null;index"`
	LoggedAgainstID string `gorm:"not null;index"`
	Comments        string `gorm:"not null"`

	ModeratorID *string
	Decision    string `gorm:"type:varchar(20)"`
	DecidedAt   *time.Time

	LoggedBy      *User `gorm:"foreignKey:LoggedByID"`
	LoggedAgainst *User `gorm:"foreignKey:LoggedAgainstID"`
}
