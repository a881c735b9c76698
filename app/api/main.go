package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/base/database/mongoclient"
	"github.com/nuna-market/goapi/base/database/redisclient"
	"github.com/nuna-market/goapi/base/log"
	"github.com/nuna-market/goapi/base/metrics"
	bValidator "github.com/nuna-market/goapi/base/validator"
	"github.com/nuna-market/goapi/domain/keys"
	mmiddleware "github.com/nuna-market/goapi/middleware"
	"github.com/nuna-market/goapi/service/chain"
	"github.com/nuna-market/goapi/service/chain/contract"
	"github.com/nuna-market/goapi/service/query"
	"github.com/nuna-market/goapi/service/redis"
	"github.com/nuna-market/goapi/service/ttlstore"
	"github.com/nuna-market/goapi/service/ttlstore/provider"
	primitive_provider "github.com/nuna-market/goapi/service/ttlstore/provider/primitive"
	redis_provider "github.com/nuna-market/goapi/service/ttlstore/provider/redis"
	account_delivery "github.com/nuna-market/goapi/stores/account/delivery/http"
	account_repository "github.com/nuna-market/goapi/stores/account/repository"
	account_usecase "github.com/nuna-market/goapi/stores/account/usecase"
	auth_delivery "github.com/nuna-market/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/nuna-market/goapi/stores/auth/delivery/http/middleware"
	auth_repository "github.com/nuna-market/goapi/stores/auth/repository"
	auth_usecase "github.com/nuna-market/goapi/stores/auth/usecase"
	exchange_usecase "github.com/nuna-market/goapi/stores/exchange/usecase"
	hc_delivery "github.com/nuna-market/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/nuna-market/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/nuna-market/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/nuna-market/goapi/stores/listing/delivery/http"
	listing_repository "github.com/nuna-market/goapi/stores/listing/repository"
	listing_usecase "github.com/nuna-market/goapi/stores/listing/usecase"
	marketplace_delivery "github.com/nuna-market/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/nuna-market/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/nuna-market/goapi/stores/marketplace/usecase"
	offer_delivery "github.com/nuna-market/goapi/stores/offer/delivery/http"
	offer_repository "github.com/nuna-market/goapi/stores/offer/repository"
	offer_usecase "github.com/nuna-market/goapi/stores/offer/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("ttlstore.provider", "primitive")
	viper.SetDefault("ttlstore.cacheSizeMb", 64)
	viper.SetDefault("ttlstore.config.threshold", 60*24*time.Hour)
	viper.SetDefault("ttlstore.config.extend", 120*24*time.Hour)
	viper.SetDefault("ttlstore.listing.threshold", 10*24*time.Hour)
	viper.SetDefault("ttlstore.listing.extend", 30*24*time.Hour)
	viper.SetDefault("ttlstore.offer.threshold", 5*24*time.Hour)
	viper.SetDefault("ttlstore.offer.extend", 15*24*time.Hour)

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	v := validator.New()
	v.RegisterValidation("addr", func(fl validator.FieldLevel) bool {
		return bValidator.IsValidAddress(fl.Field().String())
	})
	e.Validator = bValidator.NewCustomValidator(v)

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	// init ttl storage
	var ttlProvider provider.Provider
	switch viper.GetString("ttlstore.provider") {
	case "redis":
		ttlProvider = redis_provider.NewRedis(redisCache)
	default:
		ttlProvider = primitive_provider.NewPrimitive("ttlstore", viper.GetInt("ttlstore.cacheSizeMb"))
	}
	configPolicy := ttlstore.Policy{
		Threshold: viper.GetDuration("ttlstore.config.threshold"),
		Extend:    viper.GetDuration("ttlstore.config.extend"),
	}
	configStore := ttlstore.New(ttlstore.ServiceConfig{
		Policy: configPolicy,
		Pfx:    keys.PfxMarketplace,
		Store:  ttlProvider,
	})
	listingStore := ttlstore.New(ttlstore.ServiceConfig{
		Policy: ttlstore.Policy{
			Threshold: viper.GetDuration("ttlstore.listing.threshold"),
			Extend:    viper.GetDuration("ttlstore.listing.extend"),
		},
		Pfx:   keys.PfxListing,
		Store: ttlProvider,
	})
	// the active-listing index outlives any single listing record
	listingIndexStore := ttlstore.New(ttlstore.ServiceConfig{
		Policy: configPolicy,
		Pfx:    keys.PfxListing,
		Store:  ttlProvider,
	})
	offerStore := ttlstore.New(ttlstore.ServiceConfig{
		Policy: ttlstore.Policy{
			Threshold: viper.GetDuration("ttlstore.offer.threshold"),
			Extend:    viper.GetDuration("ttlstore.offer.extend"),
		},
		Pfx:   keys.PfxOffer,
		Store: ttlProvider,
	})

	// init chain service
	networks := viper.Sub("networks")
	networkKeys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range networkKeys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		OperatorKey: viper.GetString("chain.operatorKey"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chainService failed to start")
	}
	erc721Service := contract.NewErc721(chainService)
	erc20Service := contract.NewErc20(chainService)
	royaltyService := contract.NewRoyalty(chainService)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	activityRepo := account_repository.NewActivityHistoryRepo(q)
	marketplaceRepo := marketplace_repository.New(configStore)
	authNonceRepo := auth_repository.New(redisCache)
	listingRepo := listing_repository.New(listingStore, listingIndexStore)
	offerRepo := offer_repository.New(offerStore)

	hc := hc_usecase.New(hcRepo)
	activityHistory := account_usecase.NewActivityHistoryUseCase(activityRepo)
	marketplace := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		Marketplace:     marketplaceRepo,
		ActivityHistory: activityRepo,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Listing:         listingRepo,
		Marketplace:     marketplaceRepo,
		Erc721:          erc721Service,
		ActivityHistory: activityRepo,
	})
	offer := offer_usecase.New(&offer_usecase.OfferUseCaseCfg{
		Offer:           offerRepo,
		Marketplace:     marketplaceRepo,
		ActivityHistory: activityRepo,
	})
	exchange := exchange_usecase.New(&exchange_usecase.ExchangeUseCaseCfg{
		Marketplace:     marketplaceRepo,
		Listing:         listingRepo,
		Offer:           offerRepo,
		Erc721:          erc721Service,
		Erc20:           erc20Service,
		Royalty:         royaltyService,
		ActivityHistory: activityRepo,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"), authNonceRepo)

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	marketplace_delivery.New(e, authMiddleware, marketplace)
	listing_delivery.New(e, authMiddleware, listing, exchange)
	offer_delivery.New(e, authMiddleware, offer, exchange)
	account_delivery.New(e, activityHistory)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
