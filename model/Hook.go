package model

const (
	HookInviteMember       = "action:group.inviteMember"
	HookRequestMembership  = "action:group.requestMembership"
	HookNotificationPushed = "action:notification.pushed"
)

type GroupHookData struct {
	GroupName string  `json:"groupName"`
	Uids      []int64 `json:"uids"`
}

type NotificationHookData struct {
	Notification Notification `json:"notification"`
	Uids         []int64      `json:"uids"`
}
