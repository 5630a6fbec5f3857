package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type UserService interface {
	Register(ctx context.Context, req *service.RegisterRequest) (*model.User, error)
	CurrentUser(ctx context.Context, actor int64) (*model.User, error)
	ChannelProfile(ctx context.Context, viewer int64, username string) (*model.ChannelProfile, error)
}

var _ UserService = (*service.UserService)(nil)

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register reads a multipart form; avatar and coverImage files are optional.
func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var uploads common.Uploads
	defer uploads.Cleanup()

	req := &service.RegisterRequest{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		FullName: c.PostForm("fullName"),
		Password: c.PostForm("password"),
	}
	var err error
	if req.AvatarPath, err = uploads.Save(c, "avatar"); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if req.CoverImagePath, err = uploads.Save(c, "coverImage"); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	user, err := h.users.Register(ctx, req)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusCreated, user, "User registered successfully")
}

func (h *UserHandler) CurrentUser(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	user, err := h.users.CurrentUser(ctx, actor)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, user, "Current user fetched successfully")
}

func (h *UserHandler) ChannelProfile(ctx context.Context, c *app.RequestContext) {
	profile, err := h.users.ChannelProfile(ctx, common.OptionalActor(c), c.Param("username"))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, profile, "User channel fetched successfully")
}
