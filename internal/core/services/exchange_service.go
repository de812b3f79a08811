package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
	"github.com/seedswap/seed_exchange_app/internal/dto"
)

// defaultListLimit bounds the exchange listings served to a single user.
const defaultListLimit = 100

// exchangeService implements the ExchangeSvcFacade interface.
type exchangeService struct {
	BaseService
	exchangeRepo portsrepo.ExchangeRepository
	entities     *EntityCache
	dispatcher   portssvc.NotificationDispatcherSvc
	stats        portssvc.StatsSvcFacade
}

// ExchangeServiceOption is a functional option for configuring the exchange service
type ExchangeServiceOption func(*exchangeService)

// WithNotificationDispatcher adds the notification dispatcher dependency
func WithNotificationDispatcher(d portssvc.NotificationDispatcherSvc) ExchangeServiceOption {
	return func(s *exchangeService) {
		s.dispatcher = d
	}
}

// WithStatsInvalidator adds the stats service dependency used for cache invalidation
func WithStatsInvalidator(stats portssvc.StatsSvcFacade) ExchangeServiceOption {
	return func(s *exchangeService) {
		s.stats = stats
	}
}

// NewExchangeService creates the exchange lifecycle service with the provided options
func NewExchangeService(repo portsrepo.ExchangeRepository, entities *EntityCache, options ...ExchangeServiceOption) portssvc.ExchangeSvcFacade {
	svc := &exchangeService{
		exchangeRepo: repo,
		entities:     entities,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure exchangeService implements the ExchangeSvcFacade interface
var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

func (s *exchangeService) CreateExchangeRequest(ctx context.Context, requesterID string, req dto.CreateExchangeRequest) (*dto.EnrichedExchangeResponse, error) {
	seeds, err := s.entities.GetSeeds(ctx, []string{req.SeedRequestedID, req.SeedOfferedID})
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve seeds for exchange request",
			slog.String("seed_requested_id", req.SeedRequestedID),
			slog.String("seed_offered_id", req.SeedOfferedID))
		return nil, err
	}

	seedRequested, ok := seeds[req.SeedRequestedID]
	if !ok {
		return nil, fmt.Errorf("requested seed %s: %w", req.SeedRequestedID, apperrors.ErrNotFound)
	}
	seedOffered, ok := seeds[req.SeedOfferedID]
	if !ok {
		return nil, fmt.Errorf("offered seed %s: %w", req.SeedOfferedID, apperrors.ErrNotFound)
	}

	// The owner side is derived from the requested seed, never from the payload.
	ownerID := seedRequested.OwnerID

	// Requesting your own seed is a permission problem, not a malformed payload.
	if ownerID == requesterID {
		return nil, fmt.Errorf("cannot request own seed: %w", apperrors.ErrPermissionDenied)
	}

	result := domain.ValidateExchangePayload(domain.ExchangePayload{
		RequesterID:     requesterID,
		OwnerID:         ownerID,
		SeedRequestedID: req.SeedRequestedID,
		SeedOfferedID:   req.SeedOfferedID,
		Message:         req.Message,
	})
	if !result.Valid {
		return nil, fmt.Errorf("%s: %w", strings.Join(result.Errors, "; "), apperrors.ErrValidation)
	}

	if seedOffered.OwnerID != requesterID {
		s.LogWarn(ctx, "Requester offered a seed they do not own",
			slog.String("requester_id", requesterID),
			slog.String("seed_offered_id", req.SeedOfferedID))
		return nil, fmt.Errorf("offered seed does not belong to requester: %w", apperrors.ErrPermissionDenied)
	}
	if !seedRequested.AvailableForExchange() {
		return nil, fmt.Errorf("requested seed is not available: %w", apperrors.ErrUnavailable)
	}
	if !seedOffered.AvailableForExchange() {
		return nil, fmt.Errorf("offered seed is not available: %w", apperrors.ErrUnavailable)
	}

	// Point-in-time duplicate guard, checked before account resolution. Two
	// simultaneous identical requests can both pass this check; the store's
	// uniqueness constraint is the backstop.
	active, err := s.exchangeRepo.HasActiveExchange(ctx, requesterID, req.SeedRequestedID, req.SeedOfferedID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for duplicate exchange")
		return nil, err
	}
	if active {
		return nil, fmt.Errorf("an active exchange for these seeds already exists: %w", apperrors.ErrDuplicate)
	}

	requester, err := s.entities.GetUser(ctx, requesterID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve requester",
			slog.String("requester_id", requesterID))
		return nil, err
	}
	owner, err := s.entities.GetUser(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve seed owner",
			slog.String("owner_id", ownerID))
		return nil, err
	}
	if !owner.Settings.Privacy.AllowExchangeRequests {
		return nil, fmt.Errorf("owner does not accept exchange requests: %w", apperrors.ErrPermissionDenied)
	}

	now := time.Now()
	exchange := domain.Exchange{
		ExchangeID:      uuid.NewString(),
		RequesterID:     requesterID,
		OwnerID:         ownerID,
		SeedRequestedID: req.SeedRequestedID,
		SeedOfferedID:   req.SeedOfferedID,
		Status:          domain.StatusPending,
		Message:         req.Message,
		Version:         1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.exchangeRepo.SaveExchange(ctx, exchange); err != nil {
		s.LogError(ctx, err, "Failed to save exchange",
			slog.String("exchange_id", exchange.ExchangeID))
		return nil, err
	}

	s.LogInfo(ctx, "Exchange request created",
		slog.String("exchange_id", exchange.ExchangeID),
		slog.String("requester_id", requesterID),
		slog.String("owner_id", ownerID))

	s.notify(ctx, ownerID, domain.NotificationExchangeRequest, exchange.ExchangeID, map[string]string{
		"counterpartName": requester.Name,
		"seedName":        seedRequested.Name,
	})
	s.invalidateStats(requesterID, ownerID)

	enriched := s.enrichExchanges(ctx, []domain.Exchange{exchange}, "")
	return &enriched[0], nil
}

func (s *exchangeService) UpdateExchangeStatus(ctx context.Context, exchangeID string, newStatus domain.ExchangeStatus, actorID string) (*dto.UpdateSummaryResponse, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("unknown status %q: %w", newStatus, apperrors.ErrValidation)
	}

	exchange, err := s.exchangeRepo.FindExchangeByID(ctx, exchangeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load exchange for transition",
				slog.String("exchange_id", exchangeID))
		}
		return nil, err
	}

	previous := exchange.Status
	if !domain.CanTransition(previous, newStatus) {
		return nil, fmt.Errorf("cannot move exchange from %s to %s: %w", previous, newStatus, apperrors.ErrInvalidTransition)
	}
	if !exchange.ActorPermitted(newStatus, actorID) {
		s.LogWarn(ctx, "Actor not permitted to apply transition",
			slog.String("exchange_id", exchangeID),
			slog.String("actor_id", actorID),
			slog.String("new_status", string(newStatus)))
		return nil, fmt.Errorf("user may not set status %s: %w", newStatus, apperrors.ErrPermissionDenied)
	}

	now := time.Now()
	exchange.Status = newStatus
	switch newStatus {
	case domain.StatusAccepted:
		exchange.AcceptedAt = &now
		exchange.AcceptedBy = actorID
	case domain.StatusRejected:
		exchange.RejectedAt = &now
		exchange.RejectedBy = actorID
	case domain.StatusCompleted:
		exchange.CompletedAt = &now
		exchange.CompletedBy = actorID
	}
	exchange.Version++
	exchange.LastUpdatedAt = now

	if err := s.exchangeRepo.UpdateExchangeStatus(ctx, *exchange); err != nil {
		s.LogError(ctx, err, "Failed to persist exchange transition",
			slog.String("exchange_id", exchangeID),
			slog.String("new_status", string(newStatus)))
		return nil, err
	}

	s.LogInfo(ctx, "Exchange status updated",
		slog.String("exchange_id", exchangeID),
		slog.String("previous_status", string(previous)),
		slog.String("new_status", string(newStatus)),
		slog.String("actor_id", actorID))

	recipient := exchange.RequesterID
	if actorID == exchange.RequesterID {
		recipient = exchange.OwnerID
	}
	s.notify(ctx, recipient, domain.NotificationTypeForStatus(newStatus), exchange.ExchangeID, map[string]string{
		"counterpartName": s.userName(ctx, actorID),
		"seedName":        s.seedName(ctx, exchange.SeedRequestedID),
	})
	s.invalidateStats(exchange.RequesterID, exchange.OwnerID)

	return &dto.UpdateSummaryResponse{
		ExchangeID:     exchange.ExchangeID,
		PreviousStatus: previous,
		NewStatus:      newStatus,
		UpdatedBy:      actorID,
		Version:        exchange.Version,
	}, nil
}

func (s *exchangeService) DeleteExchange(ctx context.Context, exchangeID string) error {
	exchange, err := s.exchangeRepo.FindExchangeByID(ctx, exchangeID)
	if err != nil {
		return err
	}
	if err := s.exchangeRepo.DeleteExchange(ctx, exchangeID); err != nil {
		s.LogError(ctx, err, "Failed to delete exchange",
			slog.String("exchange_id", exchangeID))
		return err
	}
	s.LogInfo(ctx, "Exchange deleted", slog.String("exchange_id", exchangeID))
	s.invalidateStats(exchange.RequesterID, exchange.OwnerID)
	return nil
}

func (s *exchangeService) GetExchangeByID(ctx context.Context, exchangeID string) (*dto.EnrichedExchangeResponse, error) {
	exchange, err := s.exchangeRepo.FindExchangeByID(ctx, exchangeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find exchange by ID",
				slog.String("exchange_id", exchangeID))
		}
		return nil, err
	}
	enriched := s.enrichExchanges(ctx, []domain.Exchange{*exchange}, "")
	return &enriched[0], nil
}

func (s *exchangeService) GetUserExchangesReceived(ctx context.Context, userID string) ([]dto.EnrichedExchangeResponse, error) {
	exchanges, err := s.exchangeRepo.ListExchangesByOwner(ctx, userID, nil, defaultListLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list received exchanges",
			slog.String("user_id", userID))
		return nil, err
	}
	return s.enrichExchanges(ctx, exchanges, domain.RoleOwner), nil
}

func (s *exchangeService) GetUserExchangesSent(ctx context.Context, userID string) ([]dto.EnrichedExchangeResponse, error) {
	exchanges, err := s.exchangeRepo.ListExchangesByRequester(ctx, userID, nil, defaultListLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sent exchanges",
			slog.String("user_id", userID))
		return nil, err
	}
	return s.enrichExchanges(ctx, exchanges, domain.RoleRequester), nil
}

func (s *exchangeService) GetExchangeHistory(ctx context.Context, userID string) (*dto.ExchangeHistoryResponse, error) {
	terminal := []domain.ExchangeStatus{domain.StatusCompleted, domain.StatusRejected}

	asOwner, err := s.exchangeRepo.ListExchangesByOwner(ctx, userID, terminal, defaultListLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list owner-side history", slog.String("user_id", userID))
		return nil, err
	}
	asRequester, err := s.exchangeRepo.ListExchangesByRequester(ctx, userID, terminal, defaultListLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list requester-side history", slog.String("user_id", userID))
		return nil, err
	}

	// A self-exchange is rejected at creation, so the two lists are disjoint
	// in practice. De-duplicate anyway to keep the summary counts honest.
	seen := make(map[string]struct{}, len(asOwner)+len(asRequester))
	merged := make([]domain.Exchange, 0, len(asOwner)+len(asRequester))
	roles := make(map[string]domain.ExchangeRole, len(asOwner)+len(asRequester))
	for _, e := range asOwner {
		if _, dup := seen[e.ExchangeID]; dup {
			continue
		}
		seen[e.ExchangeID] = struct{}{}
		roles[e.ExchangeID] = domain.RoleOwner
		merged = append(merged, e)
	}
	for _, e := range asRequester {
		if _, dup := seen[e.ExchangeID]; dup {
			continue
		}
		seen[e.ExchangeID] = struct{}{}
		roles[e.ExchangeID] = domain.RoleRequester
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].LastUpdatedAt.After(merged[j].LastUpdatedAt)
	})

	summary := domain.HistorySummary{Total: len(merged)}
	for _, e := range merged {
		switch e.Status {
		case domain.StatusCompleted:
			summary.Completed++
		case domain.StatusRejected:
			summary.Rejected++
		}
		if roles[e.ExchangeID] == domain.RoleOwner {
			summary.AsOwner++
		} else {
			summary.AsRequester++
		}
	}

	enriched := s.enrichExchanges(ctx, merged, "")
	for i := range enriched {
		enriched[i].UserRole = roles[enriched[i].ExchangeID]
	}

	return &dto.ExchangeHistoryResponse{Exchanges: enriched, Summary: summary}, nil
}

func (s *exchangeService) CheckSeedActiveExchanges(ctx context.Context, seedID string) (*dto.SeedActiveExchangesResponse, error) {
	exchanges, err := s.exchangeRepo.ListActiveExchangesForSeed(ctx, seedID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active exchanges for seed",
			slog.String("seed_id", seedID))
		return nil, err
	}

	resp := &dto.SeedActiveExchangesResponse{
		HasActiveExchanges: len(exchanges) > 0,
		Exchanges:          make([]dto.SeedExchangeRef, 0, len(exchanges)),
	}
	for _, e := range exchanges {
		side := "offered"
		if e.SeedRequestedID == seedID {
			side = "requested"
		}
		resp.Exchanges = append(resp.Exchanges, dto.SeedExchangeRef{
			ExchangeID:  e.ExchangeID,
			Side:        side,
			Status:      e.Status,
			RequesterID: e.RequesterID,
			OwnerID:     e.OwnerID,
			CreatedAt:   e.CreatedAt,
		})
		resp.Counts.Total++
		switch e.Status {
		case domain.StatusPending:
			resp.Counts.Pending++
		case domain.StatusAccepted:
			resp.Counts.Accepted++
		}
	}
	return resp, nil
}

// notify dispatches a notification without letting a failure reach the caller.
func (s *exchangeService) notify(ctx context.Context, recipientID string, notifType domain.NotificationType, exchangeID string, data map[string]string) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Dispatch(ctx, recipientID, notifType, exchangeID, data); err != nil {
		s.LogWarn(ctx, "Notification dispatch failed",
			slog.String("recipient_id", recipientID),
			slog.String("type", string(notifType)),
			slog.String("error", err.Error()))
	}
}

func (s *exchangeService) invalidateStats(userIDs ...string) {
	if s.stats == nil {
		return
	}
	for _, id := range userIDs {
		s.stats.InvalidateUserStatsCache(id)
	}
}

// userName resolves a display name for notification payloads. Best effort.
func (s *exchangeService) userName(ctx context.Context, userID string) string {
	user, err := s.entities.GetUser(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Name
}

// seedName resolves a seed name for notification payloads. Best effort.
func (s *exchangeService) seedName(ctx context.Context, seedID string) string {
	seed, err := s.entities.GetSeed(ctx, seedID)
	if err != nil {
		return ""
	}
	return seed.Name
}

// enrichExchanges attaches seed and user projections to the given exchanges.
// Enrichment is best-effort: a projection that cannot be resolved is left nil
// rather than failing the read. Contact details are only attached once the
// exchange has reached a contact-sharing status and the user opted in.
func (s *exchangeService) enrichExchanges(ctx context.Context, exchanges []domain.Exchange, role domain.ExchangeRole) []dto.EnrichedExchangeResponse {
	seedIDs := make([]string, 0, len(exchanges)*2)
	for _, e := range exchanges {
		seedIDs = append(seedIDs, e.SeedRequestedID, e.SeedOfferedID)
	}
	seeds, err := s.entities.GetSeeds(ctx, seedIDs)
	if err != nil {
		s.LogWarn(ctx, "Seed enrichment failed", slog.String("error", err.Error()))
		seeds = map[string]domain.Seed{}
	}

	responses := make([]dto.EnrichedExchangeResponse, 0, len(exchanges))
	for _, e := range exchanges {
		resp := dto.EnrichedExchangeResponse{
			ExchangeID:      e.ExchangeID,
			RequesterID:     e.RequesterID,
			OwnerID:         e.OwnerID,
			SeedRequestedID: e.SeedRequestedID,
			SeedOfferedID:   e.SeedOfferedID,
			Status:          e.Status,
			Message:         e.Message,
			Version:         e.Version,
			CreatedAt:       e.CreatedAt,
			UpdatedAt:       e.LastUpdatedAt,
			AcceptedAt:      e.AcceptedAt,
			RejectedAt:      e.RejectedAt,
			CompletedAt:     e.CompletedAt,
			UserRole:        role,
		}
		if seed, ok := seeds[e.SeedRequestedID]; ok {
			resp.SeedRequested = seedSummary(seed)
		}
		if seed, ok := seeds[e.SeedOfferedID]; ok {
			resp.SeedOffered = seedSummary(seed)
		}
		shareContact := e.Status == domain.StatusAccepted || e.Status == domain.StatusCompleted
		resp.Requester = s.userSummary(ctx, e.RequesterID, shareContact)
		resp.Owner = s.userSummary(ctx, e.OwnerID, shareContact)
		responses = append(responses, resp)
	}
	return responses
}

func seedSummary(seed domain.Seed) *dto.SeedSummary {
	return &dto.SeedSummary{
		SeedID:   seed.SeedID,
		Name:     seed.Name,
		Variety:  seed.Variety,
		ImageURL: seed.ImageURL,
	}
}

func (s *exchangeService) userSummary(ctx context.Context, userID string, shareContact bool) *dto.UserSummary {
	user, err := s.entities.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User enrichment failed",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
		}
		return nil
	}
	summary := &dto.UserSummary{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}
	if shareContact && user.Settings.Privacy.ShowWhatsApp {
		summary.WhatsApp = user.WhatsAppNumber
	}
	return summary
}
