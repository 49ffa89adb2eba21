package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocery/internal/config"
	"grocery/internal/domain/model"
	"grocery/internal/handler"
	"grocery/internal/infra/db"
	"grocery/internal/infra/logger"
	infraRepo "grocery/internal/infra/repository"
	"grocery/internal/server"
	"grocery/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Cart{},
	); err != nil {
		log.Fatal("auto migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, log)
	customerUC := usecase.NewCustomerUsecase(customerRepo, cartRepo, log)
	productUC := usecase.NewProductUsecase(productRepo, log)

	//Handler生成
	e := server.New(
		log,
		handler.NewCartHandler(cartUC),
		handler.NewCustomerHandler(customerUC),
		handler.NewProductHandler(productUC),
	)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server start failed", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("addr", addr))

	//SIGINT/SIGTERMで止める
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
