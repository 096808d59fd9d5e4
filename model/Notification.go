package model

const (
	NotificationTypeRequestMembership = "group-request-membership"
	NotificationTypeGroupInvite       = "group-invite"
)

type Notification struct {
	Nid       string
	Type      string
	BodyShort string
	BodyLong  string
	Path      string
	From      int64 `dynamodbav:",omitempty"`
	Datetime  int64
}

// UserNotification is one entry of a user's notification inbox.
type UserNotification struct {
	Uid      int64
	Nid      string
	Datetime int64
	Read     bool
}

func (n *Notification) Validate() error {
	if n.Nid == "" {
		return ErrNoNotificationId
	}
	return nil
}
