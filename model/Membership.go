package model

type Membership struct {
	GroupName string
	Uid       int64
	JoinedAt  int64
}
