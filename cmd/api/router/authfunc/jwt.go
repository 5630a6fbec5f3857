package authfunc

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
	"github.com/pkg/errors"
)

const (
	loginUserKey = "login_user"
	authErrorKey = "auth_error"
)

// Authenticator checks login credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, login, password string) (*model.User, error)
}

// LoginParam accepts either the username or the email as login.
type LoginParam struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// NewJWT builds the token middleware. The identity claim carries the user id
// as a decimal string and is exposed to handlers as int64 under
// constants.IdentityKey.
func NewJWT(users Authenticator, secret string, timeout, maxRefresh time.Duration) (*jwt.HertzJWTMiddleware, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(secret),
		Timeout:       timeout,
		MaxRefresh:    maxRefresh,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, query: token, cookie: accessToken",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{constants.IdentityKey: utils.FormatID(user.ID)}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[constants.IdentityKey])
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var param LoginParam
			if err := c.Bind(&param); err != nil {
				hlog.CtxInfof(ctx, "bind login body: %v", err)
			}
			login := strings.TrimSpace(param.Username)
			if login == "" {
				login = strings.TrimSpace(param.Email)
			}
			user, err := users.Authenticate(ctx, login, param.Password)
			if err != nil {
				return nil, err
			}
			c.Set(loginUserKey, user)
			return user, nil
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			id, ok := data.(int64)
			return ok && id > 0
		},
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			c.Set(authErrorKey, e)
			return e.Error()
		},
		Unauthorized:    unauthorized,
		LoginResponse:   tokenResponse("User logged in successfully"),
		RefreshResponse: tokenResponse("Access token refreshed"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "init jwt middleware")
	}
	return mw, nil
}

// unauthorized keeps typed failures from the authenticator (404 unknown
// user, 400 blank fields) and maps token failures onto code.
func unauthorized(ctx context.Context, c *app.RequestContext, code int, message string) {
	if v, ok := c.Get(authErrorKey); ok {
		if err, ok := v.(error); ok {
			var e errno.ErrNo
			if errors.As(err, &e) {
				common.SendError(ctx, c, e)
				return
			}
		}
	}
	if code == consts.StatusForbidden {
		code = consts.StatusUnauthorized
	}
	common.SendError(ctx, c, errno.NewErrNo(int64(code), message))
}

func tokenResponse(message string) func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
	return func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
		data := hutils.H{
			"accessToken": token,
			"expire":      expire.Format(time.RFC3339),
		}
		if user, ok := c.Get(loginUserKey); ok {
			data["user"] = user
		}
		common.SendResponse(c, code, data, message)
	}
}

// Auth rejects requests without a valid token.
func Auth(mw *jwt.HertzJWTMiddleware) app.HandlerFunc {
	return mw.MiddlewareFunc()
}

// OptionalAuth attaches the identity when a valid token is present and lets
// anonymous requests through untouched.
func OptionalAuth(mw *jwt.HertzJWTMiddleware) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if claims, err := mw.GetClaimsFromJWT(ctx, c); err == nil {
			if id := utils.Transfer(claims[constants.IdentityKey]); id > 0 {
				c.Set(constants.IdentityKey, id)
			}
		}
		c.Next(ctx)
	}
}
