package main

import (
	"time"

	"github.com/connersimmonsmayne/weddingplanner-sub000/config"
	"github.com/connersimmonsmayne/weddingplanner-sub000/contracts/mq"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/geo"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/mqhandler"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/db"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/logger"
	pkgmq "github.com/connersimmonsmayne/weddingplanner-sub000/pkg/mq"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/redis"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/util"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting geocode worker...")

	rdb := redis.NewClient(cfg.Redis)
	defer rdb.Close()

	// Short TTL: a guest whose address is edited twice in a minute gets
	// geocoded once, anything slower goes through.
	deduper := util.NewDeduper(rdb, time.Minute, log)

	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB connection failed", zap.Error(err))
	}
	defer dbConn.Close()

	guestRepo := repository.NewGuestRepository(dbConn, log)
	geocoder := geo.NewGeocoder(cfg.Geocoder, rdb, log)

	geocodeHandler := mqhandler.NewGuestGeocodeHandler(guestRepo, geocoder, deduper, log)

	// Imported and edited addresses land in separate queues so a big CSV
	// batch cannot starve single-guest edits of their queue position.
	log.Info("Init consumer: guest.imported.geocode.q")
	consumerImported, err := pkgmq.NewConsumer(
		cfg.MQ.URL,
		"guest.imported.geocode.q",
		mq.RoutingKeyGuestImported,
		log,
	)
	if err != nil {
		log.Fatal("Imported consumer init failed", zap.Error(err))
	}
	consumerImported.SetHandler(geocodeHandler.HandleGuestAddress)

	go func() {
		if err := consumerImported.StartConsuming(); err != nil {
			log.Fatal("Imported consumer crashed", zap.Error(err))
		}
	}()
	defer consumerImported.Close()

	log.Info("Init consumer: guest.address_updated.geocode.q")
	consumerUpdated, err := pkgmq.NewConsumer(
		cfg.MQ.URL,
		"guest.address_updated.geocode.q",
		mq.RoutingKeyGuestAddressUpdated,
		log,
	)
	if err != nil {
		log.Fatal("Updated consumer init failed", zap.Error(err))
	}
	consumerUpdated.SetHandler(geocodeHandler.HandleGuestAddress)

	go func() {
		if err := consumerUpdated.StartConsuming(); err != nil {
			log.Fatal("Updated consumer crashed", zap.Error(err))
		}
	}()
	defer consumerUpdated.Close()

	log.Info("Worker running")
	select {}
}
