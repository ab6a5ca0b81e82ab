package server

import (
	"fmt"

	"github.com/edicola-dev/edicola/lib/news"
	"github.com/edicola-dev/edicola/rpc/common"
)

func NewNewsServerAdapter() IRPCServerAdapter {
	return &newsServerAdapterImpl{}
}

type newsServerAdapterImpl struct{}

func (adapter *newsServerAdapterImpl) Handle(req *common.Message, svc *news.Service) *common.Message {
	// Check for nil service
	if svc == nil {
		return common.NewErrorResponse("handler: service is nil")
	}

	// Handle different message types
	switch req.MsgType {
	case common.MsgTSubCreate:
		sub, err := svc.Create(req.Title, req.Target, req.UserID, req.CategoryID)
		return common.NewSubCreateResponse(wireSubmission(sub), err)

	case common.MsgTSubUpdate:
		ok, err := svc.Update(req.ID, req.Title, req.Target)
		return common.NewSubUpdateResponse(ok, err)

	case common.MsgTSubDestroy:
		ok, err := svc.Destroy(req.ID)
		return common.NewSubDestroyResponse(ok, err)

	case common.MsgTSubVote:
		rank, rejection, err := svc.Vote(req.ID, req.UserID, news.Direction(req.Direction))
		return common.NewSubVoteResponse(rank, int(rejection), err)

	case common.MsgTSubFind:
		subs, err := svc.Find(req.IDs, news.FindOptions{UpdateRank: req.UpdateRank, ViewerID: req.ViewerID})
		wire := make([]*common.Submission, len(subs))
		for i, sub := range subs {
			wire[i] = common.FromSubmission(sub)
		}
		return common.NewSubFindResponse(wire, err)

	case common.MsgTSubResolveURL:
		id, ok, err := svc.FindIDByURL(req.URL)
		return common.NewSubResolveURLResponse(id, ok, err)

	case common.MsgTListTop:
		ids, total, err := svc.TopListing(req.CategoryID, req.Start, req.Count)
		return common.NewListingResponse(req.MsgType, ids, total, err)

	case common.MsgTListLatest:
		ids, total, err := svc.LatestListing(req.CategoryID, req.Start, req.Count)
		return common.NewListingResponse(req.MsgType, ids, total, err)

	case common.MsgTListSaved:
		ids, total, err := svc.SavedListing(req.UserID, req.Start, req.Count)
		return common.NewListingResponse(req.MsgType, ids, total, err)

	case common.MsgTListPosted:
		ids, total, err := svc.PostedListing(req.UserID, req.Start, req.Count)
		return common.NewListingResponse(req.MsgType, ids, total, err)

	case common.MsgTUserCreate:
		user, err := svc.CreateUser(req.Name, req.Email)
		return common.NewUserResponse(req.MsgType, wireUser(user), err)

	case common.MsgTUserFind:
		user, err := svc.FindUser(req.ID)
		return common.NewUserResponse(req.MsgType, wireUser(user), err)

	case common.MsgTUserFindByEmail:
		user, err := svc.FindUserByEmail(req.Email)
		return common.NewUserResponse(req.MsgType, wireUser(user), err)

	case common.MsgTCatCreate:
		category, err := svc.CreateCategory(req.Code)
		return common.NewCategoryResponse(req.MsgType, wireCategory(category), err)

	case common.MsgTCatFind:
		category, err := svc.FindCategory(req.ID)
		return common.NewCategoryResponse(req.MsgType, wireCategory(category), err)

	case common.MsgTCatFindByCode:
		category, err := svc.FindCategoryByCode(req.Code)
		return common.NewCategoryResponse(req.MsgType, wireCategory(category), err)

	default:
		return common.NewErrorResponse(
			fmt.Sprintf("RPC NewsAdapter - Unsupported message type: %s", req.MsgType),
		)
	}
}

// nil-safe conversion helpers, absence stays absent on the wire

func wireSubmission(sub *news.Submission) *common.Submission {
	if sub == nil {
		return nil
	}
	return common.FromSubmission(sub)
}

func wireUser(user *news.User) *common.User {
	if user == nil {
		return nil
	}
	return common.FromUser(user)
}

func wireCategory(category *news.Category) *common.Category {
	if category == nil {
		return nil
	}
	return common.FromCategory(category)
}
