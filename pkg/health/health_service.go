package health

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/pkg/food"
	"FoodGuard-Backend/pkg/notification"
	"FoodGuard-Backend/pkg/nutrition"
	"FoodGuard-Backend/pkg/risk"
	"FoodGuard-Backend/pkg/user"
	"context"
	"errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"strings"
	"time"
)

const (
	DefaultConcurrency = 8
	DefaultReportCap   = 50
	DefaultLookupWait  = 3 * time.Second
	DigestExpiryDays   = 3
)

type (
	Config struct {
		// Concurrency caps parallel evaluations, and with them parallel nutrition lookups.
		Concurrency       int
		ReportCap         int
		AlternativesLimit int
		LookupTimeout     time.Duration
	}

	HealthService interface {
		EvaluateFood(ctx context.Context, userID string, foodID string) (domain.FoodRiskResponse, error)
		EvaluateInventory(ctx context.Context, userID string) (domain.InventoryRiskResponse, error)
		CheckProduct(ctx context.Context, userID string, req domain.CheckProductRequest) (domain.FoodRiskResponse, error)
		GetAlternatives(ctx context.Context, userID string, foodID string) (domain.AlternativesResponse, error)
		RunDigest(ctx context.Context, u *entities.User) (DigestResult, error)
	}

	DigestResult struct {
		Evaluated   int
		RiskAlerts  int
		ExpiryItems int
	}

	healthService struct {
		foodRepository food.FoodRepository
		userRepository user.UserRepository
		evaluator      *risk.Evaluator
		products       nutrition.Provider
		notifier       notification.NotificationService
		config         Config
		logger         *zap.Logger
		now            func() time.Time
	}

	evaluation struct {
		item    *entities.FoodItem
		food    risk.Food
		verdict risk.Verdict
	}
)

// NewHealthService wires risk evaluation to the stores. products and notifier may be nil.
func NewHealthService(
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
	evaluator *risk.Evaluator,
	products nutrition.Provider,
	notifier notification.NotificationService,
	config Config,
	logger *zap.Logger,
) HealthService {
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}
	if config.ReportCap <= 0 {
		config.ReportCap = DefaultReportCap
	}
	if config.AlternativesLimit <= 0 {
		config.AlternativesLimit = risk.DefaultAlternativesLimit
	}
	if config.LookupTimeout <= 0 {
		config.LookupTimeout = DefaultLookupWait
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if evaluator == nil {
		evaluator = risk.NewEvaluator(nil, logger)
	}
	return &healthService{
		foodRepository: foodRepository,
		userRepository: userRepository,
		evaluator:      evaluator,
		products:       products,
		notifier:       notifier,
		config:         config,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *healthService) EvaluateFood(ctx context.Context, userID string, foodID string) (domain.FoodRiskResponse, error) {
	u, item, err := s.load(ctx, userID, foodID)
	if err != nil {
		return domain.FoodRiskResponse{}, err
	}
	profile := user.ToRiskProfile(u)

	ev := s.evaluate(ctx, item, profile, true)
	checkedAt := s.now()
	s.cacheVerdict(ctx, item, ev.verdict, checkedAt)

	alternatives, err := s.alternatives(ctx, userID, ev, profile)
	if err != nil {
		return domain.FoodRiskResponse{}, err
	}

	if !ev.verdict.IsSafe() && s.notifier != nil {
		if err := s.notifier.NotifyRisk(ctx, u, item, ev.verdict); err != nil {
			s.logger.Warn("Risk alert delivery incomplete",
				zap.String("user_id", userID),
				zap.String("food_item_id", foodID),
				zap.Error(err),
			)
		}
	}

	return domain.FoodRiskResponse{
		FoodItemID:   item.ID.String(),
		Name:         item.Name,
		Brand:        item.Brand,
		Category:     item.Category,
		Verdict:      ev.verdict,
		Alternatives: alternatives,
		Substitutes:  s.substitutes(ev, profile),
		CheckedAt:    checkedAt,
	}, nil
}

// EvaluateInventory evaluates the user's active items, soonest expiry first,
// up to the report cap.
func (s *healthService) EvaluateInventory(ctx context.Context, userID string) (domain.InventoryRiskResponse, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.InventoryRiskResponse{}, err
	}

	items, err := s.foodRepository.GetActiveFoodItems(ctx, userID)
	if err != nil {
		return domain.InventoryRiskResponse{}, err
	}

	truncated := false
	if len(items) > s.config.ReportCap {
		items = items[:s.config.ReportCap]
		truncated = true
	}

	evaluations, err := s.evaluateAll(ctx, items, user.ToRiskProfile(u), true)
	if err != nil {
		return domain.InventoryRiskResponse{}, err
	}

	checkedAt := s.now()
	resp := domain.InventoryRiskResponse{
		Items: make([]domain.InventoryRiskItem, 0, len(evaluations)),
		Summary: map[string]int{
			risk.Safe.String():     0,
			risk.Moderate.String(): 0,
			risk.Risky.String():    0,
			risk.Harmful.String():  0,
		},
		Truncated: truncated,
	}
	for _, ev := range evaluations {
		s.cacheVerdict(ctx, ev.item, ev.verdict, checkedAt)
		resp.Summary[ev.verdict.OverallRisk.String()]++
		resp.Items = append(resp.Items, domain.InventoryRiskItem{
			FoodItemID:   ev.item.ID.String(),
			Name:         ev.item.Name,
			Brand:        ev.item.Brand,
			OverallRisk:  ev.verdict.OverallRisk,
			FindingCount: len(ev.verdict.All()),
			Headline:     risk.Headline(ev.verdict.OverallRisk),
		})
	}
	return resp, nil
}

// CheckProduct evaluates a product that is not in the inventory, e.g. a
// scanned barcode in a shop. Nothing is stored and no alert is sent.
func (s *healthService) CheckProduct(ctx context.Context, userID string, req domain.CheckProductRequest) (domain.FoodRiskResponse, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.FoodRiskResponse{}, err
	}

	item := &entities.FoodItem{
		Name:        strings.TrimSpace(req.Name),
		Brand:       strings.TrimSpace(req.Brand),
		Category:    strings.ToLower(req.Category),
		Barcode:     req.Barcode,
		Ingredients: datatypes.NewJSONType([]string(req.Ingredients)),
		Allergens:   datatypes.NewJSONType(req.Allergens),
		Nutrition:   datatypes.NewJSONType(food.NutritionFromRequest(req.Nutrition)),
	}

	if req.Barcode != "" && s.products != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, s.config.LookupTimeout)
		product, err := s.products.LookupBarcode(lookupCtx, req.Barcode)
		cancel()
		if err != nil {
			s.logger.Info("Product lookup failed, evaluating submitted data only",
				zap.String("barcode", req.Barcode),
				zap.Error(err),
			)
		} else {
			food.ApplyProduct(item, product)
		}
	}
	if item.Name == "" {
		return domain.FoodRiskResponse{}, domain.ErrProductNotFound
	}

	profile := user.ToRiskProfile(u)
	ev := s.evaluate(ctx, item, profile, false)
	ev.food.ID = ""

	alternatives, err := s.alternatives(ctx, userID, ev, profile)
	if err != nil {
		return domain.FoodRiskResponse{}, err
	}

	return domain.FoodRiskResponse{
		Name:         item.Name,
		Brand:        item.Brand,
		Category:     item.Category,
		Verdict:      ev.verdict,
		Alternatives: alternatives,
		Substitutes:  s.substitutes(ev, profile),
		CheckedAt:    s.now(),
	}, nil
}

func (s *healthService) GetAlternatives(ctx context.Context, userID string, foodID string) (domain.AlternativesResponse, error) {
	u, item, err := s.load(ctx, userID, foodID)
	if err != nil {
		return domain.AlternativesResponse{}, err
	}
	profile := user.ToRiskProfile(u)

	ev := s.evaluate(ctx, item, profile, true)
	alternatives, err := s.alternatives(ctx, userID, ev, profile)
	if err != nil {
		return domain.AlternativesResponse{}, err
	}

	return domain.AlternativesResponse{
		FoodItemID:   item.ID.String(),
		OverallRisk:  ev.verdict.OverallRisk,
		Alternatives: alternatives,
		Substitutes:  s.substitutes(ev, profile),
	}, nil
}

// RunDigest evaluates one user's inventory, alerts on every non-safe item and
// sends a single expiry digest. Delivery failures are logged, not returned.
func (s *healthService) RunDigest(ctx context.Context, u *entities.User) (DigestResult, error) {
	var result DigestResult
	userID := u.ID.String()

	items, err := s.foodRepository.GetActiveFoodItems(ctx, userID)
	if err != nil {
		return result, err
	}

	evaluations, err := s.evaluateAll(ctx, items, user.ToRiskProfile(u), true)
	if err != nil {
		return result, err
	}
	result.Evaluated = len(evaluations)

	checkedAt := s.now()
	for _, ev := range evaluations {
		s.cacheVerdict(ctx, ev.item, ev.verdict, checkedAt)
		if ev.verdict.IsSafe() || s.notifier == nil {
			continue
		}
		result.RiskAlerts++
		if err := s.notifier.NotifyRisk(ctx, u, ev.item, ev.verdict); err != nil {
			s.logger.Warn("Risk alert delivery incomplete", zap.String("user_id", userID), zap.Error(err))
		}
	}

	// expired items are still active until the user discards them
	var expiring []*entities.FoodItem
	for _, item := range items {
		if food.ComputeExpiry(item.ExpiryDate, checkedAt).DaysUntilExpiry <= DigestExpiryDays {
			expiring = append(expiring, item)
		}
	}
	result.ExpiryItems = len(expiring)
	if len(expiring) > 0 && s.notifier != nil {
		if err := s.notifier.NotifyExpiry(ctx, u, expiring); err != nil {
			s.logger.Warn("Expiry digest delivery incomplete", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return result, nil
}

// evaluateAll runs the evaluations with at most config.Concurrency in flight.
// Output order matches items.
func (s *healthService) evaluateAll(ctx context.Context, items []*entities.FoodItem, profile risk.Profile, enrich bool) ([]evaluation, error) {
	out := make([]evaluation, len(items))

	g, grpCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			out[i] = s.evaluate(grpCtx, item, profile, enrich)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// evaluate optionally fills missing nutrition from the provider first. A slow
// or failed lookup leaves nutrition absent, which the heuristics cover.
func (s *healthService) evaluate(ctx context.Context, item *entities.FoodItem, profile risk.Profile, enrich bool) evaluation {
	f := food.ToRiskFood(item)
	if enrich && item.Barcode != "" && f.Nutrition.Empty() && s.products != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, s.config.LookupTimeout)
		product, err := s.products.LookupBarcode(lookupCtx, item.Barcode)
		cancel()
		if err != nil {
			s.logger.Debug("Nutrition unavailable, evaluating without it",
				zap.String("barcode", item.Barcode),
				zap.Error(err),
			)
		} else if product.Nutrition != nil {
			f.Nutrition = product.Nutrition
		}
	}
	return evaluation{item: item, food: f, verdict: s.evaluator.Evaluate(f, profile)}
}

// alternatives draws from the user's own active items whose verdict is safe.
func (s *healthService) alternatives(ctx context.Context, userID string, ev evaluation, profile risk.Profile) ([]risk.Alternative, error) {
	if ev.verdict.IsSafe() {
		return []risk.Alternative{}, nil
	}

	items, err := s.foodRepository.GetActiveFoodItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates := make([]*entities.FoodItem, 0, len(items))
	for _, item := range items {
		if ev.item == nil || item.ID != ev.item.ID {
			candidates = append(candidates, item)
		}
	}

	// enriched like every other inventory evaluation, so a candidate that only
	// looks safe without its nutrition is not offered
	evaluations, err := s.evaluateAll(ctx, candidates, profile, true)
	if err != nil {
		return nil, err
	}

	pool := make([]risk.Food, 0, len(evaluations))
	for _, c := range evaluations {
		if c.verdict.IsSafe() {
			pool = append(pool, c.food)
		}
	}

	found := risk.FindAlternatives(ev.food, ev.verdict, pool, s.config.AlternativesLimit)
	if found == nil {
		found = []risk.Alternative{}
	}
	return found, nil
}

func (s *healthService) substitutes(ev evaluation, profile risk.Profile) []string {
	if ev.verdict.IsSafe() {
		return []string{}
	}
	out := risk.SuggestSubstitutes(s.evaluator.KnowledgeBase(), ev.food, profile)
	if out == nil {
		out = []string{}
	}
	return out
}

func (s *healthService) cacheVerdict(ctx context.Context, item *entities.FoodItem, verdict risk.Verdict, at time.Time) {
	level := verdict.OverallRisk.String()
	if err := s.foodRepository.UpdateRiskLevel(ctx, item.ID.String(), level, at); err != nil {
		s.logger.Warn("Failed to cache risk level",
			zap.String("food_item_id", item.ID.String()),
			zap.Error(err),
		)
		return
	}
	item.RiskLevel = level
	item.RiskCheckedAt = &at
}

func (s *healthService) load(ctx context.Context, userID string, foodID string) (*entities.User, *entities.FoodItem, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	item, err := s.foodRepository.GetFoodItemByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrFoodItemNotFound
		}
		return nil, nil, err
	}
	if item.UserID.String() != userID {
		return nil, nil, domain.ErrUnauthorizedAccess
	}
	return u, item, nil
}

func (s *healthService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
