package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"courierbilling/auth"
	"courierbilling/config"
	"courierbilling/handlers"
	"courierbilling/models"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	cfg *config.Config,
	userHandler *handlers.UserHandler,
	catalogHandler *handlers.CatalogHandler,
	partyHandler *handlers.PartyHandler,
	rateSlabHandler *handlers.RateSlabHandler,
	quotationHandler *handlers.QuotationHandler,
	billHandler *handlers.BillHandler,
	setupHandler *handlers.SetupHandler,
	importHandler *handlers.ImportHandler,
	companyHandler *handlers.CompanyHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(withCORS, handlers.Recoverer)

	// User routes
	r.Post("/signup", userHandler.Signup)
	r.Post("/login", userHandler.Login)

	r.Route("/api", func(api chi.Router) {
		// Admin-only configuration surface
		api.Group(func(g chi.Router) {
			g.Use(auth.Middleware(cfg.JWTSecret, models.RoleAdmin))
			g.Post("/setup", setupHandler.Setup)
			g.Post("/catalogs/{kind}", catalogHandler.CreateItem)
			g.Put("/catalogs/{kind}/{id}", catalogHandler.UpdateItem)
			g.Post("/company", companyHandler.SaveProfile)
		})

		// Billing operator surface (admin subsumes it)
		api.Group(func(g chi.Router) {
			g.Use(auth.Middleware(cfg.JWTSecret, models.RoleBillingOperator))

			g.Get("/catalogs", catalogHandler.GetCatalogs)
			g.Get("/company", companyHandler.GetProfile)

			g.Get("/parties", partyHandler.GetParties)
			g.Post("/parties", partyHandler.SaveParty)
			g.Get("/parties/{id}/scenarios", partyHandler.GetScenarios)
			g.Get("/parties/{id}/quotations", quotationHandler.Get)
			g.Put("/parties/{id}/quotations", quotationHandler.Save)
			g.Delete("/parties/{id}/quotations", quotationHandler.Delete)

			g.Get("/party-rate-slabs", rateSlabHandler.List)
			g.Post("/party-rate-slabs", rateSlabHandler.Upsert)
			g.Delete("/party-rate-slabs/{id}", rateSlabHandler.Delete)
			g.Get("/party-rate-slabs/audit", rateSlabHandler.Audit)

			g.Get("/bills", billHandler.ListBills)
			g.Post("/bills", billHandler.CreateBill)
			g.Get("/bills/{id}/pdf", billHandler.BillHTML)
			g.Post("/bills/{id}/print", billHandler.PrintBill)

			g.Post("/import/csv", importHandler.ImportCSV)
		})
	})

	return r
}
