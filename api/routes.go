package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ironforge/finance-server/internal/handlers/v1/balances"
	"github.com/ironforge/finance-server/internal/handlers/v1/calendar"
	"github.com/ironforge/finance-server/internal/handlers/v1/stats"
	"github.com/ironforge/finance-server/internal/handlers/v1/status"
	"github.com/ironforge/finance-server/internal/handlers/v1/transaction"
	"github.com/ironforge/finance-server/internal/logging"
	"github.com/ironforge/finance-server/internal/outbox"
	"github.com/ironforge/finance-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Outbox  *outbox.Outbox
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Outbox)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("finance-server", "1.0.0"))
	humaAPI.UseMiddleware(r.requestLogging)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)
	balances.NewGetBalancesHandler(r.Service.Balance).Register(humaAPI)
	balances.NewUpdateBalancesHandler(r.Service.Balance).Register(humaAPI)
	calendar.NewListEventsHandler(r.Service.Dashboard).Register(humaAPI)
	calendar.NewGetBalanceHandler(r.Service.Dashboard).Register(humaAPI)
	stats.NewGetStatsHandler(r.Service.Dashboard).Register(humaAPI)
	stats.NewGetProjectionHandler(r.Service.Dashboard).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// requestLogging attaches a fresh LogData to each request context and emits
// one completion line per request with the accumulated fields.
func (r *Rest) requestLogging(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	endTimer := logData.AddTiming("duration")

	next(huma.WithContext(ctx, logging.NewContext(ctx.Context(), logData)))

	endTimer()
	logData.AddData("path", ctx.URL().Path)
	logData.AddData("status", ctx.Status())
	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}
