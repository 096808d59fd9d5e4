package main

import (
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/model"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/service"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/util"
)

type Response struct {
	Group GroupResponse `json:"group"`
}

type GroupResponse struct {
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Description string               `json:"description"`
	Private     bool                 `json:"private"`
	OwnerUid    int64                `json:"ownerUid"`
	MemberCount int64                `json:"memberCount"`
	CreatedAt   string               `json:"createdAt"`
	UpdatedAt   string               `json:"updatedAt"`
	Memberships []MembershipResponse `json:"memberships"`
}

type MembershipResponse struct {
	Uid      int64  `json:"uid"`
	JoinedAt string `json:"joinedAt"`
}

func Handle(input events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	group, err := service.GetGroupBySlug(input.PathParameters["slug"])
	if err != nil {
		return util.NewErrorResponse(err)
	}

	memberships, err := service.GetMembershipsByGroupName(group.Name)
	if err != nil {
		return util.NewErrorResponse(err)
	}

	membershipResponses := make([]MembershipResponse, 0, len(memberships))

	for _, membership := range memberships {
		membershipResponses = append(membershipResponses, MembershipResponse{
			Uid:      membership.Uid,
			JoinedAt: time.Unix(0, membership.JoinedAt).UTC().Format(model.TimestampFormat),
		})
	}

	response := Response{
		Group: GroupResponse{
			Name:        group.Name,
			Slug:        group.Slug,
			Description: group.Description,
			Private:     group.Private,
			OwnerUid:    group.OwnerUid,
			MemberCount: group.MemberCount,
			CreatedAt:   time.Unix(0, group.CreatedAt).UTC().Format(model.TimestampFormat),
			UpdatedAt:   time.Unix(0, group.UpdatedAt).UTC().Format(model.TimestampFormat),
			Memberships: membershipResponses,
		},
	}

	return util.NewSuccessResponse(200, response)
}

func main() {
	util.InitLogging()
	lambda.Start(Handle)
}
