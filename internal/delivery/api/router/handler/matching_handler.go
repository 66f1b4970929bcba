package handler

import (
	"log/slog"
	"net/http"
	"time"

	"agrimatch/internal/delivery/api/middleware"
	"agrimatch/internal/delivery/api/response"
	"agrimatch/internal/domain/entity"
	domainerrors "agrimatch/internal/domain/errors"
	"agrimatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchingHandlerParams holds dependencies for MatchingHandler, injected by Fx.
type MatchingHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	PairingUC  usecase.PairingUsecase
	SweeperUC  usecase.SweeperUsecase
	Logger     *slog.Logger
}

// MatchingHandler serves candidate generation and the pairing lifecycle.
type MatchingHandler struct {
	matchingUC usecase.MatchingUsecase
	pairingUC  usecase.PairingUsecase
	sweeperUC  usecase.SweeperUsecase
	logger     *slog.Logger
}

// NewMatchingHandler is the constructor for MatchingHandler
func NewMatchingHandler(params MatchingHandlerParams) *MatchingHandler {
	return &MatchingHandler{
		matchingUC: params.MatchingUC,
		pairingUC:  params.PairingUC,
		sweeperUC:  params.SweeperUC,
		logger:     params.Logger,
	}
}

// RespondRequest is the body of a respond call.
type RespondRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accepted rejected"`
}

// GenerateResponse lists every candidate above the threshold, best first.
type GenerateResponse struct {
	Matches []entity.Candidate `json:"matches"`
	Count   int                `json:"count"`
	Saved   int                `json:"saved"`
	Message string             `json:"message"`
}

// MatchesResponse lists persisted pairings of the caller.
type MatchesResponse struct {
	Matches []*entity.Pairing `json:"matches"`
	Count   int               `json:"count"`
}

// DetailsResponse is a pairing with both parties and current offerings.
type DetailsResponse struct {
	Pairing   *entity.Pairing     `json:"pairing"`
	Producer  entity.PartySummary `json:"producer"`
	Buyer     entity.PartySummary `json:"buyer"`
	Offerings []entity.Offering   `json:"offerings"`
}

// CleanupResponse reports an expiration sweep.
type CleanupResponse struct {
	Deleted int64     `json:"deleted"`
	SweptAt time.Time `json:"swept_at"`
}

// GenerateForProducer handles POST /matching/producer/generate
func (h *MatchingHandler) GenerateForProducer(c echo.Context) error {
	return h.generate(c, entity.SideProducer)
}

// GenerateForBuyer handles POST /matching/buyer/generate
func (h *MatchingHandler) GenerateForBuyer(c echo.Context) error {
	return h.generate(c, entity.SideBuyer)
}

func (h *MatchingHandler) generate(c echo.Context, side entity.Side) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()

	var (
		out *usecase.GenerateMatchesOutput
		err error
	)
	if side == entity.SideBuyer {
		out, err = h.matchingUC.GenerateForBuyer(ctx, userID)
	} else {
		out, err = h.matchingUC.GenerateForProducer(ctx, userID)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, GenerateResponse{
		Matches: out.Candidates,
		Count:   len(out.Candidates),
		Saved:   out.Saved,
		Message: out.Message,
	})
}

// ListProducerMatches handles GET /matching/producer/matches
func (h *MatchingHandler) ListProducerMatches(c echo.Context) error {
	return h.listMatches(c, entity.SideProducer)
}

// ListBuyerMatches handles GET /matching/buyer/matches
func (h *MatchingHandler) ListBuyerMatches(c echo.Context) error {
	return h.listMatches(c, entity.SideBuyer)
}

func (h *MatchingHandler) listMatches(c echo.Context, side entity.Side) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pairings, err := h.pairingUC.ListMatches(c.Request().Context(), side, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MatchesResponse{Matches: pairings, Count: len(pairings)})
}

// ProducerRespond handles POST /matching/producer/respond/:pairingId
func (h *MatchingHandler) ProducerRespond(c echo.Context) error {
	return h.respond(c, entity.SideProducer)
}

// BuyerRespond handles POST /matching/buyer/respond/:pairingId
func (h *MatchingHandler) BuyerRespond(c echo.Context) error {
	return h.respond(c, entity.SideBuyer)
}

func (h *MatchingHandler) respond(c echo.Context, side entity.Side) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pairingID, err := uuid.Parse(c.Param("pairingId"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidPairingID)
	}

	var req RespondRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid respond input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidDecision.WithDetails(err.Error()))
	}

	pairing, err := h.pairingUC.Respond(c.Request().Context(), &usecase.RespondInput{
		PairingID: pairingID,
		PartyID:   userID,
		Side:      side,
		Decision:  entity.Response(req.Decision),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pairing)
}

// GetDetails handles GET /matching/details/:pairingId
func (h *MatchingHandler) GetDetails(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pairingID, err := uuid.Parse(c.Param("pairingId"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidPairingID)
	}

	details, err := h.pairingUC.GetDetails(c.Request().Context(), pairingID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DetailsResponse{
		Pairing:   details.Pairing,
		Producer:  details.Producer,
		Buyer:     details.Buyer,
		Offerings: details.Offerings,
	})
}

// GetStats handles GET /matching/stats
func (h *MatchingHandler) GetStats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.pairingUC.GetStats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// CleanupExpired handles DELETE /matching/cleanup-expired
func (h *MatchingHandler) CleanupExpired(c echo.Context) error {
	out, err := h.sweeperUC.CleanupExpired(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CleanupResponse{Deleted: out.Deleted, SweptAt: out.SweptAt})
}
