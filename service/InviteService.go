package service

import (
	"fmt"

	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/config"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/logging"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
	"golang.org/x/sync/errgroup"
)

type SetStore interface {
	SetAdd(key string, members []string) error
	SetsRemove(keys []string, member string) error
	IsSetMembers(key string, members []string) ([]bool, error)
	GetSetMembers(key string) ([]string, error)
}

type GroupDirectory interface {
	Exists(groupName string) (bool, error)
	IsMembers(uids []int64, groupName string) ([]bool, error)
	GetOwners(groupName string) ([]int64, error)
	Join(groupName string, uid int64) error
}

type UserDirectory interface {
	GetDisplayName(uid int64) (string, error)
}

type Notifier interface {
	Create(n model.Notification) (model.Notification, error)
	Push(n model.Notification, uids []int64) error
}

type HookFirer interface {
	Fire(name string, data interface{})
}

// Groups runs the membership request and invitation workflows on top of
// its collaborators.
type Groups struct {
	Sets          SetStore
	Directory     GroupDirectory
	Users         UserDirectory
	Notifications Notifier
	Hooks         HookFirer
}

// NewGroups wires Groups to DynamoDB, and to SNS when HOOKS_TOPIC_ARN is set.
func NewGroups() *Groups {
	hooks := NewHookBus()
	if topicArn := config.MustGet().HooksTopicArn; topicArn != "" {
		hooks.Register("", NewTopicPublisher(SNS(), topicArn))
	}

	return &Groups{
		Sets:          dynamoSetStore{},
		Directory:     dynamoGroupDirectory{},
		Users:         dynamoUserDirectory{},
		Notifications: dynamoNotifier{hooks: hooks},
		Hooks:         hooks,
	}
}

type membershipKind int

const (
	kindInvite membershipKind = iota
	kindRequest
)

func (k membershipKind) setKey(groupName string) string {
	if k == kindInvite {
		return model.InvitedSetKey(groupName)
	}
	return model.PendingSetKey(groupName)
}

func (k membershipKind) hookName() string {
	if k == kindInvite {
		return model.HookInviteMember
	}
	return model.HookRequestMembership
}

// inviteOrRequestMembership adds the uids that are neither members nor
// already in the target set, and returns them. Duplicate uids are collapsed
// to their first occurrence, so an invitee is notified once per call.
func (g *Groups) inviteOrRequestMembership(groupName string, uids []int64, kind membershipKind) ([]int64, error) {
	uids = uniquePositiveUids(uids)

	var (
		exists    bool
		isMember  []bool
		isPending []bool
		isInvited []bool
		eg        errgroup.Group
	)

	eg.Go(func() (err error) {
		exists, err = g.Directory.Exists(groupName)
		return err
	})
	eg.Go(func() (err error) {
		isMember, err = g.Directory.IsMembers(uids, groupName)
		return err
	})
	eg.Go(func() (err error) {
		isPending, err = g.ArePending(uids, groupName)
		return err
	})
	eg.Go(func() (err error) {
		isInvited, err = g.AreInvited(uids, groupName)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if !exists {
		return nil, model.ErrNoGroup
	}

	added := make([]int64, 0, len(uids))
	for i, uid := range uids {
		if isMember[i] {
			continue
		}
		if (kind == kindInvite && isInvited[i]) || (kind == kindRequest && isPending[i]) {
			continue
		}
		added = append(added, uid)
	}

	err := g.Sets.SetAdd(kind.setKey(groupName), uidMembers(added))
	if err != nil {
		return nil, err
	}

	g.Hooks.Fire(kind.hookName(), model.GroupHookData{
		GroupName: groupName,
		Uids:      added,
	})

	return added, nil
}

// RequestMembership records uid's request to join and notifies the owners.
// The owners are notified even when uid was already pending or a member.
func (g *Groups) RequestMembership(groupName string, uid int64) error {
	_, err := g.inviteOrRequestMembership(groupName, []int64{uid}, kindRequest)
	if err != nil {
		return err
	}

	displayName, err := g.Users.GetDisplayName(uid)
	if err != nil {
		return err
	}

	var (
		notification model.Notification
		owners       []int64
		eg           errgroup.Group
	)

	eg.Go(func() (err error) {
		notification, err = g.Notifications.Create(model.Notification{
			Type:      model.NotificationTypeRequestMembership,
			BodyShort: fmt.Sprintf("[[groups:request.notification_title, %s]]", displayName),
			BodyLong:  fmt.Sprintf("[[groups:request.notification_text, %s, %s]]", displayName, groupName),
			Nid:       fmt.Sprintf("group:%s:uid:%d:request", groupName, uid),
			Path:      model.GroupPath(groupName),
			From:      uid,
		})
		return err
	})
	eg.Go(func() (err error) {
		owners, err = g.Directory.GetOwners(groupName)
		return err
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	logging.Log.Info().Str("group", groupName).Int64("uid", uid).Int("owners", len(owners)).Msg("membership requested")

	return g.Notifications.Push(notification, owners)
}

// AcceptMembership clears uid's request or invitation, joins the group and
// tells uid about it.
func (g *Groups) AcceptMembership(groupName string, uid int64) error {
	err := g.Sets.SetsRemove([]string{model.PendingSetKey(groupName), model.InvitedSetKey(groupName)}, uidMember(uid))
	if err != nil {
		return err
	}

	err = g.Directory.Join(groupName, uid)
	if err != nil {
		return err
	}

	notification, err := g.Notifications.Create(model.Notification{
		Type:      model.NotificationTypeGroupInvite,
		BodyShort: fmt.Sprintf("[[groups:membership.accept.notification_title, %s]]", groupName),
		Nid:       fmt.Sprintf("group:%s:uid:%d:invite-accepted", groupName, uid),
		Path:      model.GroupPath(groupName),
	})
	if err != nil {
		return err
	}

	logging.Log.Info().Str("group", groupName).Int64("uid", uid).Msg("membership accepted")

	return g.Notifications.Push(notification, []int64{uid})
}

// RejectMembership drops uid from the pending and invited sets of every group.
func (g *Groups) RejectMembership(groupNames []string, uid int64) error {
	if len(groupNames) == 0 {
		return nil
	}

	sets := make([]string, 0, 2*len(groupNames))
	for _, groupName := range groupNames {
		sets = append(sets, model.PendingSetKey(groupName), model.InvitedSetKey(groupName))
	}

	return g.Sets.SetsRemove(sets, uidMember(uid))
}

// Invite adds uids to the invited set and sends each new invitee a notification.
func (g *Groups) Invite(groupName string, uids []int64) error {
	invited, err := g.inviteOrRequestMembership(groupName, uids, kindInvite)
	if err != nil {
		return err
	}

	notifications := make([]model.Notification, len(invited))

	var create errgroup.Group
	for i, uid := range invited {
		i, uid := i, uid
		create.Go(func() (err error) {
			notifications[i], err = g.Notifications.Create(model.Notification{
				Type:      model.NotificationTypeGroupInvite,
				BodyShort: fmt.Sprintf("[[groups:invited.notification_title, %s]]", groupName),
				BodyLong:  "",
				Nid:       fmt.Sprintf("group:%s:uid:%d:invite", groupName, uid),
				Path:      model.GroupPath(groupName),
			})
			return err
		})
	}

	if err := create.Wait(); err != nil {
		return err
	}

	var push errgroup.Group
	for i, uid := range invited {
		i, uid := i, uid
		push.Go(func() error {
			return g.Notifications.Push(notifications[i], []int64{uid})
		})
	}

	logging.Log.Info().Str("group", groupName).Int("count", len(invited)).Msg("users invited")

	return push.Wait()
}

func (g *Groups) IsInvited(uid int64, groupName string) (bool, error) {
	invited, err := g.AreInvited([]int64{uid}, groupName)
	if err != nil {
		return false, err
	}
	return invited[0], nil
}

func (g *Groups) AreInvited(uids []int64, groupName string) ([]bool, error) {
	return g.checkInvitePending(uids, model.InvitedSetKey(groupName))
}

func (g *Groups) IsPending(uid int64, groupName string) (bool, error) {
	pending, err := g.ArePending([]int64{uid}, groupName)
	if err != nil {
		return false, err
	}
	return pending[0], nil
}

func (g *Groups) ArePending(uids []int64, groupName string) ([]bool, error) {
	return g.checkInvitePending(uids, model.PendingSetKey(groupName))
}

// checkInvitePending answers in the order of uids; non-positive uids are
// never looked up and report false.
func (g *Groups) checkInvitePending(uids []int64, set string) ([]bool, error) {
	checkUids := make([]int64, 0, len(uids))
	for _, uid := range uids {
		if uid > 0 {
			checkUids = append(checkUids, uid)
		}
	}

	result := make([]bool, len(uids))
	if len(checkUids) == 0 {
		return result, nil
	}

	isMembers, err := g.Sets.IsSetMembers(set, uidMembers(checkUids))
	if err != nil {
		return nil, err
	}

	found := make(map[int64]bool, len(checkUids))
	for i, uid := range checkUids {
		found[uid] = isMembers[i]
	}

	for i, uid := range uids {
		result[i] = found[uid]
	}

	return result, nil
}

func (g *Groups) GetPending(groupName string) ([]int64, error) {
	return g.getSetUids(groupName, model.PendingSetKey(groupName))
}

func (g *Groups) GetInvites(groupName string) ([]int64, error) {
	return g.getSetUids(groupName, model.InvitedSetKey(groupName))
}

func (g *Groups) getSetUids(groupName, set string) ([]int64, error) {
	if groupName == "" {
		return []int64{}, nil
	}

	members, err := g.Sets.GetSetMembers(set)
	if err != nil {
		return nil, err
	}

	return membersToUids(members), nil
}
