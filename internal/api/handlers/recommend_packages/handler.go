package recommend_packages

import (
	"net/http"
	"strconv"

	"github.com/broomaam/BAAM-BookingService/internal/api/handlers"
	recommendPackages "github.com/broomaam/BAAM-BookingService/internal/usecase/recommend_packages"
)

const (
	msgInvalidGuests = "invalid guests parameter, expected an integer"
)

type Handler struct {
	useCase RecommendPackagesUseCase
	logger  Logger
}

func NewHandler(useCase RecommendPackagesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/recommendations?guests=150
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guests := 0
	if raw := r.URL.Query().Get("guests"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /packages/recommendations - Invalid guests: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
		guests = parsed
	}

	resp, err := h.useCase.Execute(r.Context(), &recommendPackages.Request{Guests: guests})
	if err != nil {
		h.logger.Error("GET /packages/recommendations - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
