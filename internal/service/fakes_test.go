package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/model"

	"github.com/rs/zerolog"
)

// testLogger discards output so test runs stay quiet.
func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type fakeCourseRepo struct {
	courses map[int64]*model.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*model.Course)}
}

func (r *fakeCourseRepo) CreateCourse(ctx context.Context, c *model.Course, actorAddress string) error {
	r.nextID++
	c.CourseID = r.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	stored := *c
	r.courses[c.CourseID] = &stored
	return nil
}

func (r *fakeCourseRepo) GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error) {
	c, ok := r.courses[courseID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) UpdateCoursePrice(ctx context.Context, courseID, priceCents int64) error {
	c, ok := r.courses[courseID]
	if !ok {
		return fmt.Errorf("course %d does not exist", courseID)
	}
	c.PriceCents = priceCents
	c.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCourseRepo) GetCoursesByProfileID(ctx context.Context, profileID uint64) ([]model.Course, error) {
	out := []model.Course{}
	for id := int64(1); id <= r.nextID; id++ {
		if c, ok := r.courses[id]; ok && c.ProfileID == profileID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeFeeRepo struct {
	feeBps    int32
	updateErr error
}

func (r *fakeFeeRepo) GetFeeRate(ctx context.Context) (int32, error) {
	return r.feeBps, nil
}

func (r *fakeFeeRepo) UpdateFeeRate(ctx context.Context, feeBps int32) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.feeBps = feeBps
	return nil
}

type fakeReceiptRepo struct {
	balances map[string]int64
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{balances: make(map[string]int64)}
}

func receiptKey(holder string, courseID int64) string {
	return fmt.Sprintf("%s/%d", holder, courseID)
}

func (r *fakeReceiptRepo) BalanceOf(ctx context.Context, holderAddress string, courseID int64) (int64, error) {
	return r.balances[receiptKey(holderAddress, courseID)], nil
}

func (r *fakeReceiptRepo) BalanceOfBatch(ctx context.Context, holderAddresses []string, courseIDs []int64) ([]int64, error) {
	out := make([]int64, len(holderAddresses))
	for i := range holderAddresses {
		out[i] = r.balances[receiptKey(holderAddresses[i], courseIDs[i])]
	}
	return out, nil
}

// fakePurchaseRepo mimics the transactional purchase path: the fee is
// computed from the fee repo's current rate at the start of the
// "transaction", and state changes are kept only if the disburse callback
// succeeds and the commit goes through.
type fakePurchaseRepo struct {
	receipts  *fakeReceiptRepo
	fees      *fakeFeeRepo
	purchases []model.Purchase
	nextID    int64
	commitErr error
}

func newFakePurchaseRepo(receipts *fakeReceiptRepo, fees *fakeFeeRepo) *fakePurchaseRepo {
	return &fakePurchaseRepo{receipts: receipts, fees: fees}
}

func (r *fakePurchaseRepo) ExecutePurchase(ctx context.Context, p *model.Purchase, disburse func(context.Context) error) error {
	p.FeeCents = p.AmountCents * int64(r.fees.feeBps) / model.MaxFeeBps

	key := receiptKey(p.BuyerAddress, p.CourseID)
	prevBalance := r.receipts.balances[key]
	prevCount := len(r.purchases)
	prevNextID := r.nextID

	rollback := func() {
		r.receipts.balances[key] = prevBalance
		r.purchases = r.purchases[:prevCount]
		r.nextID = prevNextID
	}

	r.receipts.balances[key] = prevBalance + 1
	r.nextID++
	p.PurchaseID = r.nextID
	p.CreatedAt = time.Now()
	r.purchases = append(r.purchases, *p)

	if err := disburse(ctx); err != nil {
		rollback()
		return fmt.Errorf("disbursing purchase funds: %w", err)
	}
	if r.commitErr != nil {
		rollback()
		return fmt.Errorf("committing purchase of course %d: %w", p.CourseID, r.commitErr)
	}
	return nil
}

func (r *fakePurchaseRepo) GetPurchasesByBuyer(ctx context.Context, buyerAddress string) ([]model.Purchase, error) {
	out := []model.Purchase{}
	for i := len(r.purchases) - 1; i >= 0; i-- {
		if r.purchases[i].BuyerAddress == buyerAddress {
			out = append(out, r.purchases[i])
		}
	}
	return out, nil
}

type fakeResolver struct {
	authorized map[string]bool   // "profileID/address" -> authorized
	addresses  map[uint64]string // profileID -> payout address
	err        error
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		authorized: make(map[string]bool),
		addresses:  make(map[uint64]string),
	}
}

func (f *fakeResolver) allow(profileID uint64, address string) {
	f.authorized[fmt.Sprintf("%d/%s", profileID, address)] = true
}

func (f *fakeResolver) IsOwnerOrDelegate(ctx context.Context, profileID uint64, address string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.authorized[fmt.Sprintf("%d/%s", profileID, address)], nil
}

func (f *fakeResolver) ResolveAddress(ctx context.Context, profileID uint64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	addr, ok := f.addresses[profileID]
	if !ok {
		return "", errors.New("unknown profile")
	}
	return addr, nil
}

type transferCall struct {
	destination string
	amountCents int64
	group       string
}

type fakeGateway struct {
	transfers []transferCall
	reversals []string
	failDest  map[string]error
	nextID    int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{failDest: make(map[string]error)}
}

func (g *fakeGateway) Transfer(ctx context.Context, destination string, amountCents int64, transferGroup string) (string, error) {
	if err := g.failDest[destination]; err != nil {
		return "", err
	}
	g.transfers = append(g.transfers, transferCall{destination, amountCents, transferGroup})
	g.nextID++
	return fmt.Sprintf("tr_%d", g.nextID), nil
}

func (g *fakeGateway) Reverse(ctx context.Context, transferID string) error {
	g.reversals = append(g.reversals, transferID)
	return nil
}
