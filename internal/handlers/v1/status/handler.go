package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ironforge/finance-server/internal/logging"
)

// queueDepther reports how many queued change events await webhook delivery.
type queueDepther interface {
	QueueDepth() int
}

type Handler struct {
	Outbox queueDepther
}

func NewHandler(outbox queueDepther) Handler {
	return Handler{Outbox: outbox}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	body := map[string]any{"status": "ok"}
	if h.Outbox != nil {
		depth := h.Outbox.QueueDepth()
		body["outboxQueueDepth"] = depth
		logData.AddData("outboxQueueDepth", depth)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(body)
}
