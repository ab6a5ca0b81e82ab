package client

import (
	"github.com/edicola-dev/edicola/lib/news"
	"github.com/edicola-dev/edicola/rpc/common"
	"github.com/edicola-dev/edicola/rpc/serializer"
	"github.com/edicola-dev/edicola/rpc/transport"
)

// INewsClient mirrors the engine's service surface over RPC. Every method
// maps to exactly one request/response round trip.
type INewsClient interface {
	// Submissions

	CreateSubmission(title, target string, authorID, categoryID int64) (*news.Submission, error)
	UpdateSubmission(id int64, title, target string) (bool, error)
	DestroySubmission(id int64) (bool, error)
	Vote(id, voterID int64, dir news.Direction) (float64, news.Rejection, error)
	Find(ids []int64, opts news.FindOptions) ([]*news.Submission, error)
	FindOne(id int64, opts news.FindOptions) (*news.Submission, error)
	ResolveURL(url string) (int64, bool, error)

	// Listings

	TopListing(categoryID int64, start, count int) ([]int64, int64, error)
	LatestListing(categoryID int64, start, count int) ([]int64, int64, error)
	SavedListing(userID int64, start, count int) ([]int64, int64, error)
	PostedListing(userID int64, start, count int) ([]int64, int64, error)

	// Users and categories

	CreateUser(name, email string) (*news.User, error)
	FindUser(id int64) (*news.User, error)
	FindUserByEmail(email string) (*news.User, error)
	CreateCategory(code string) (*news.Category, error)
	FindCategory(id int64) (*news.Category, error)
	FindCategoryByCode(code string) (*news.Category, error)

	// Close releases the underlying transport
	Close() error
}

// NewRPCNewsClient creates a new RPC client for a remote ranking engine
// The function takes a config, a transport and a serializer as parameters
func NewRPCNewsClient(
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) (INewsClient, error) {

	// Connect the transport
	if err := transport.Connect(config); err != nil {
		return nil, err
	}

	return &newsClient{
		config:     config,
		transport:  transport,
		serializer: serializer,
	}, nil
}

type newsClient struct {
	config     common.ClientConfig
	transport  transport.IRPCClientTransport
	serializer serializer.IRPCSerializer
}

// --------------------------------------------------------------------------
// Interface Methods (docu see INewsClient)
// --------------------------------------------------------------------------

func (c *newsClient) CreateSubmission(title, target string, authorID, categoryID int64) (*news.Submission, error) {
	req := common.NewSubCreateRequest(title, target, authorID, categoryID)
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return nil, err
	}
	if len(resp.Submissions) == 0 {
		return nil, nil
	}
	return resp.Submissions[0].ToSubmission(), nil
}

func (c *newsClient) UpdateSubmission(id int64, title, target string) (bool, error) {
	req := common.NewSubUpdateRequest(id, title, target)
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *newsClient) DestroySubmission(id int64) (bool, error) {
	req := common.NewSubDestroyRequest(id)
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *newsClient) Vote(id, voterID int64, dir news.Direction) (float64, news.Rejection, error) {
	req := common.NewSubVoteRequest(id, voterID, string(dir))
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return 0, news.RejectionNone, err
	}
	return resp.Rank, news.Rejection(resp.Rejection), nil
}

func (c *newsClient) Find(ids []int64, opts news.FindOptions) ([]*news.Submission, error) {
	req := common.NewSubFindRequest(ids, opts.UpdateRank, opts.ViewerID)
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return nil, err
	}

	subs := make([]*news.Submission, len(resp.Submissions))
	for i, sub := range resp.Submissions {
		subs[i] = sub.ToSubmission()
	}
	return subs, nil
}

func (c *newsClient) FindOne(id int64, opts news.FindOptions) (*news.Submission, error) {
	subs, err := c.Find([]int64{id}, opts)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return subs[0], nil
}

func (c *newsClient) ResolveURL(url string) (int64, bool, error) {
	req := common.NewSubResolveURLRequest(url)
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return 0, false, err
	}
	return resp.ID, resp.Ok, nil
}

func (c *newsClient) TopListing(categoryID int64, start, count int) ([]int64, int64, error) {
	return c.listing(common.MsgTListTop, categoryID, start, count)
}

func (c *newsClient) LatestListing(categoryID int64, start, count int) ([]int64, int64, error) {
	return c.listing(common.MsgTListLatest, categoryID, start, count)
}

func (c *newsClient) SavedListing(userID int64, start, count int) ([]int64, int64, error) {
	return c.listing(common.MsgTListSaved, userID, start, count)
}

func (c *newsClient) PostedListing(userID int64, start, count int) ([]int64, int64, error) {
	return c.listing(common.MsgTListPosted, userID, start, count)
}

func (c *newsClient) CreateUser(name, email string) (*news.User, error) {
	return c.userRequest(common.NewUserCreateRequest(name, email))
}

func (c *newsClient) FindUser(id int64) (*news.User, error) {
	return c.userRequest(common.NewUserFindRequest(id))
}

func (c *newsClient) FindUserByEmail(email string) (*news.User, error) {
	return c.userRequest(common.NewUserFindByEmailRequest(email))
}

func (c *newsClient) CreateCategory(code string) (*news.Category, error) {
	return c.categoryRequest(common.NewCatCreateRequest(code))
}

func (c *newsClient) FindCategory(id int64) (*news.Category, error) {
	return c.categoryRequest(common.NewCatFindRequest(id))
}

func (c *newsClient) FindCategoryByCode(code string) (*news.Category, error) {
	return c.categoryRequest(common.NewCatFindByCodeRequest(code))
}

func (c *newsClient) Close() error {
	return c.transport.Close()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func (c *newsClient) listing(msgType common.MessageType, scopeID int64, start, count int) ([]int64, int64, error) {
	req := common.NewListingRequest(msgType, scopeID, start, count)
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return nil, 0, err
	}
	return resp.IDs, resp.Total, nil
}

func (c *newsClient) userRequest(req *common.Message) (*news.User, error) {
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, nil
	}
	return resp.User.ToUser(), nil
}

func (c *newsClient) categoryRequest(req *common.Message) (*news.Category, error) {
	resp, err := invokeRPCRequest(req, c.transport, c.serializer)
	if err != nil {
		return nil, err
	}
	if resp.Category == nil {
		return nil, nil
	}
	return resp.Category.ToCategory(), nil
}
