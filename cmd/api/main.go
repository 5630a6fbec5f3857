package main

import (
	"context"
	"time"

	interactionhandlers "VidTube.com/cmd/api/handlers/interaction"
	relationhandlers "VidTube.com/cmd/api/handlers/relation"
	tweethandlers "VidTube.com/cmd/api/handlers/tweet"
	userhandlers "VidTube.com/cmd/api/handlers/user"
	videohandlers "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router"
	"VidTube.com/cmd/api/router/authfunc"
	interactiondb "VidTube.com/cmd/interaction/dal/db"
	interactionservice "VidTube.com/cmd/interaction/service"
	relationdb "VidTube.com/cmd/relation/dal/db"
	relationservice "VidTube.com/cmd/relation/service"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	tweetservice "VidTube.com/cmd/tweet/service"
	userdb "VidTube.com/cmd/user/dal/db"
	userservice "VidTube.com/cmd/user/service"
	videodb "VidTube.com/cmd/video/dal/db"
	videoservice "VidTube.com/cmd/video/service"
	"VidTube.com/config"
	"VidTube.com/config/jaeger"
	"VidTube.com/config/pprof"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/middleware"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	config.Init()
	cfg := config.ConfigInfo
	ctx := context.Background()

	_, closer := jaeger.InitJaeger(cfg.Jaeger.ServiceName, cfg.Jaeger.Addr)
	defer closer.Close()
	if cfg.Server.PprofAddr != "" {
		pprof.Load(cfg.Server.PprofAddr)
	}
	if err := utils.InitIDNode(cfg.Server.WorkerID, cfg.Server.DatacenterID); err != nil {
		logrus.Fatalf("init id generator: %v", err)
	}

	db, err := database.Init()
	if err != nil {
		logrus.Fatalf("init mysql: %v", err)
	}
	rdb, err := cache.InitRedis(ctx)
	if err != nil {
		logrus.Fatalf("init redis: %v", err)
	}
	storage, err := oss.InitMinio(ctx)
	if err != nil {
		logrus.Fatalf("init minio: %v", err)
	}

	var events mq.Publisher = mq.NopPublisher{}
	if url := config.RabbitMqURL(); url != "" {
		producer, err := mq.NewProducer(url)
		if err != nil {
			logrus.Fatalf("init rabbitmq: %v", err)
		}
		defer producer.Close()
		events = producer
	} else {
		logrus.Warn("RabbitMQ not configured, domain events are dropped")
	}

	// Redis backs rate limiting and the stats cache; without it both stay
	// nil interfaces and the services skip them.
	var (
		commentLimiter interactionservice.RateLimiter
		tweetLimiter   tweetservice.RateLimiter
		statsCache     videoservice.StatsCache
	)
	if rdb != nil {
		defer rdb.Close()
		limiter := cache.NewLimiter(rdb)
		commentLimiter, tweetLimiter = limiter, limiter
		statsCache = cache.NewStatsCache(rdb, constants.ChannelStatsTTL)
	}

	handlers, users := wire(db, storage, events, commentLimiter, tweetLimiter, statsCache)

	mw, err := authfunc.NewJWT(users, cfg.Jwt.Secret,
		time.Duration(cfg.Jwt.TimeoutHour)*time.Hour,
		time.Duration(cfg.Jwt.RefreshHour)*time.Hour)
	if err != nil {
		logrus.Fatalf("init jwt: %v", err)
	}
	if err := middleware.InitFlowControl(cfg.Sentinel.QPS); err != nil {
		logrus.Fatalf("init flow control: %v", err)
	}

	h := server.New(
		server.WithHostPorts(cfg.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(cfg.Server.MaxBodyMB<<20),
	)
	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(middleware.RecoveryHandler)))
	h.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Register(h.Engine, handlers, mw, middleware.FlowControl(middleware.APIResource))

	hlog.Infof("VidTube API listening on %s", cfg.Server.Addr)
	h.Spin()
}

// wire builds every store, service and handler on top of the shared
// infrastructure. The user service is returned as well because login needs it.
func wire(
	db *gorm.DB,
	storage *oss.Storage,
	events mq.Publisher,
	commentLimiter interactionservice.RateLimiter,
	tweetLimiter tweetservice.RateLimiter,
	statsCache videoservice.StatsCache,
) (*router.Handlers, *userservice.UserService) {
	videoDao := videodb.NewVideoDao(db)
	likeDao := interactiondb.NewLikeDao(db)
	subscriptionDao := relationdb.NewSubscriptionDao(db)

	users := userservice.NewUserService(userdb.NewUserDao(db), subscriptionDao, storage)
	videos := videoservice.NewVideoService(videoDao, storage, events)
	playlists := videoservice.NewPlaylistService(videodb.NewPlaylistDao(db), videoDao)
	dashboard := videoservice.NewDashboardService(videodb.NewDashboardDao(db), videoDao, statsCache)
	comments := interactionservice.NewCommentService(interactiondb.NewCommentDao(db), likeDao, commentLimiter, events)
	likes := interactionservice.NewLikeService(likeDao, events)
	tweets := tweetservice.NewTweetService(tweetdb.NewTweetDao(db), tweetLimiter)
	subscriptions := relationservice.NewSubscriptionService(subscriptionDao, events)

	return &router.Handlers{
		Users:         userhandlers.NewUserHandler(users),
		Videos:        videohandlers.NewVideoHandler(videos),
		Playlists:     videohandlers.NewPlaylistHandler(playlists),
		Dashboard:     videohandlers.NewDashboardHandler(dashboard),
		Comments:      interactionhandlers.NewCommentHandler(comments),
		Likes:         interactionhandlers.NewLikeHandler(likes),
		Tweets:        tweethandlers.NewTweetHandler(tweets),
		Subscriptions: relationhandlers.NewSubscriptionHandler(subscriptions),
	}, users
}
