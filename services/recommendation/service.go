package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinicore/config"
	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RecommendSlots computes the ranked candidate slots for the request. The
// computation is a pure function of the fetched reference data; apart from
// logging and the optional response cache it has no side effects.
func (s *DefaultRecommendationService) RecommendSlots(ctx context.Context, req models.RecommendSlotsRequest) (*models.RecommendationResponse, error) {
	logger := utils.GetLogger()

	if cached := s.cachedResponse(ctx, req); cached != nil {
		logger.Debug("serving recommendation from cache", zap.String("physicianId", req.PhysicianID))
		return cached, nil
	}

	// Resolve the three referenced entities; the lookups are independent reads.
	var (
		clinic    *models.Clinic
		physician *models.Physician
		patient   *models.Patient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clinic, err = s.ClinicRepo.GetByID(gctx, req.ClinicID)
		return err
	})
	g.Go(func() (err error) {
		physician, err = s.PhysicianRepo.GetByID(gctx, req.PhysicianID)
		return err
	})
	g.Go(func() (err error) {
		patient, err = s.PatientRepo.GetByID(gctx, req.PatientID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve request entities: %w", err)
	}
	if clinic == nil || physician == nil || patient == nil {
		logger.Warn("recommendation request references unknown entities",
			zap.String("clinicId", req.ClinicID),
			zap.String("physicianId", req.PhysicianID),
			zap.String("patientId", req.PatientID))
		return nil, ErrInvalidReference
	}

	// Resolve the requested calendar day in the clinic's timezone.
	loc, err := time.LoadLocation(clinic.Timezone)
	if err != nil {
		return nil, fmt.Errorf("clinic %s has invalid timezone %q: %w", clinic.ID, clinic.Timezone, err)
	}
	dayStart, err := time.ParseInLocation("2006-01-02", req.PreferredDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid preferredDate %q: %w", req.PreferredDate, err)
	}
	nextMidnight := dayStart.AddDate(0, 0, 1)
	dayStartUTC := dayStart.UTC()
	dayEndUTC := nextMidnight.Add(-time.Second).UTC()
	dayOfWeek := int(dayStart.Weekday()) // 0=Sunday .. 6=Saturday

	// Fetch reference data: availability blocks, existing appointments and
	// billing rules. Independent reads, issued concurrently.
	var (
		blocks       []models.AvailabilityBlock
		appointments []models.Appointment
		rules        []models.BillingRule
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		blocks, err = s.AvailabilityRepo.FindForDay(gctx, req.PhysicianID, req.ClinicID, dayStartUTC, nextMidnight.UTC(), dayOfWeek)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = s.AppointmentRepo.FindActiveInRange(gctx, req.PhysicianID, req.ClinicID, dayStartUTC, dayEndUTC)
		return err
	})
	g.Go(func() (err error) {
		rules, err = s.BillingRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch reference data: %w", err)
	}
	logger.Debug("fetched reference data",
		zap.Int("availabilityBlocks", len(blocks)),
		zap.Int("existingAppointments", len(appointments)),
		zap.Int("billingRules", len(rules)))

	if len(blocks) == 0 {
		logger.Warn("no availability blocks for request",
			zap.String("physicianId", req.PhysicianID),
			zap.String("preferredDate", req.PreferredDate))
		return s.finish(ctx, req, &models.RecommendationResponse{
			Status:           models.RecommendationNoAvailability,
			Message:          msgNoAvailability,
			RecommendedSlots: []string{},
		}), nil
	}
	if len(rules) == 0 {
		logger.Warn("no billing rules configured", zap.String("clinicId", req.ClinicID))
		return s.finish(ctx, req, &models.RecommendationResponse{
			Status:           models.RecommendationNoSlotsAvailable,
			Message:          msgNoBillingRules,
			RecommendedSlots: []string{},
		}), nil
	}

	windows := buildWindows(blocks, dayStart, loc, logger)
	slots := sliceWindows(windows, req.DurationMinutes)
	logger.Debug("sliced candidate slots", zap.Int("rawSlots", len(slots)))

	slots = filterConflicts(slots, appointments)
	logger.Debug("filtered conflicting slots", zap.Int("remaining", len(slots)))

	minGap := applicableMinGap(rules, req.DurationMinutes)
	scoreSlots(slots, appointments, minGap)

	recommended := rankSlots(slots)
	if len(recommended) == 0 {
		logger.Warn("no slots left after scoring",
			zap.String("physicianId", req.PhysicianID),
			zap.String("preferredDate", req.PreferredDate))
		return s.finish(ctx, req, &models.RecommendationResponse{
			Status:           models.RecommendationNoSlotsAvailable,
			Message:          msgNoSlots,
			RecommendedSlots: []string{},
		}), nil
	}

	logger.Info("recommendation computed",
		zap.String("physicianId", req.PhysicianID),
		zap.String("preferredDate", req.PreferredDate),
		zap.Int("minGap", minGap),
		zap.Int("recommendedSlots", len(recommended)))
	return s.finish(ctx, req, &models.RecommendationResponse{
		Status:           models.RecommendationSuccess,
		RecommendedSlots: recommended,
	}), nil
}

// cacheKey builds the deterministic Redis key for a request.
func cacheKey(req models.RecommendSlotsRequest) string {
	return fmt.Sprintf("%s%s:%s:%s:%s:%d", utils.RecommendCachePrefix,
		req.ClinicID, req.PhysicianID, req.PatientID, req.PreferredDate, req.DurationMinutes)
}

// cachedResponse returns a previously computed response for the request, or
// nil on miss (or when no cache is configured).
func (s *DefaultRecommendationService) cachedResponse(ctx context.Context, req models.RecommendSlotsRequest) *models.RecommendationResponse {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, cacheKey(req)).Result()
	if err != nil {
		return nil
	}
	var resp models.RecommendationResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil
	}
	return &resp
}

// finish caches the computed response (best effort) and returns it.
func (s *DefaultRecommendationService) finish(ctx context.Context, req models.RecommendSlotsRequest, resp *models.RecommendationResponse) *models.RecommendationResponse {
	if s.Cache == nil {
		return resp
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return resp
	}
	ttl := time.Duration(config.AppConfig.RecommendCacheTTLSecs) * time.Second
	if ttl <= 0 {
		return resp
	}
	if err := s.Cache.Set(ctx, cacheKey(req), data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache recommendation response", zap.Error(err))
	}
	return resp
}
