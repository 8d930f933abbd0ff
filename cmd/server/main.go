package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"courierbilling/billing"
	"courierbilling/config"
	"courierbilling/db"
	"courierbilling/db/postgres"
	"courierbilling/handlers"
	"courierbilling/repository"
	"courierbilling/routes"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	// Run migrations
	db.RunMigrations(cfg.PostgresURL)

	pg := postgres.NewPostgresDB(cfg.PostgresURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetime)
	if err := pg.Connect(); err != nil {
		logrus.Fatalf("postgres connect failed: %v", err)
	}
	defer pg.Disconnect()

	userRepo := repository.NewPostgresUserRepo(pg.Conn)
	catalogRepo := repository.NewPostgresCatalogRepo(pg.Conn)
	partyRepo := repository.NewPostgresPartyRepo(pg.Conn)
	rateSlabRepo := repository.NewPostgresRateSlabRepo(pg.Conn)
	quotationRepo := repository.NewPostgresQuotationRepo(pg.Conn)
	billRepo := repository.NewPostgresBillRepo(pg.Conn)
	companyRepo := repository.NewPostgresCompanyRepo(pg.Conn)
	setupRepo := repository.NewPostgresSetupRepo(pg.Conn)
	importRepo := repository.NewPostgresImportRepo(pg.Conn)

	assembler := &billing.Assembler{Bills: billRepo, Company: companyRepo}

	handler := routes.SetupRoutes(
		cfg,
		&handlers.UserHandler{Repo: userRepo, Cfg: cfg},
		&handlers.CatalogHandler{Repo: catalogRepo},
		&handlers.PartyHandler{Repo: partyRepo, Catalogs: catalogRepo, RateSlabs: rateSlabRepo},
		&handlers.RateSlabHandler{Repo: rateSlabRepo},
		&handlers.QuotationHandler{Repo: quotationRepo},
		&handlers.BillHandler{Repo: billRepo, Assembler: assembler, SavePath: cfg.PDFSavePath},
		&handlers.SetupHandler{Repo: setupRepo},
		&handlers.ImportHandler{Repo: importRepo},
		&handlers.CompanyHandler{Repo: companyRepo},
	)

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
