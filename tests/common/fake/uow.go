//go:build unit

// Package fake is an in-memory unit of work for property tests. It mirrors
// the postgres implementation's guarantees: staged writes become visible only
// on commit, and the per-table booking lock is held until the transaction
// ends.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"tableside/internal/domain/order"
	"tableside/internal/domain/table"
	"tableside/internal/infra"
	"tableside/internal/usecase/shared"
)

type UnitOfWork struct {
	mu          sync.Mutex
	tables      map[int64]*table.Table
	orders      map[int64]*order.Order
	nextTableID int64
	nextOrderID int64
	tableLocks  map[int64]*sync.Mutex

	// FailOrderCreate, when set, makes every order insert fail with it.
	FailOrderCreate error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		tables:      make(map[int64]*table.Table),
		orders:      make(map[int64]*order.Order),
		nextTableID: 1,
		nextOrderID: 1,
		tableLocks:  make(map[int64]*sync.Mutex),
	}
}

// SeedTable commits a table directly, bypassing the transactional path.
func (u *UnitOfWork) SeedTable(number, capacity int) *table.Table {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := u.nextTableID
	u.nextTableID++
	t := table.ReconstructTable(id, number, capacity)
	u.tables[id] = t
	return t
}

// SeedOrder commits an order directly, bypassing validation.
func (u *UnitOfWork) SeedOrder(tableID int64, installation time.Time, departure *time.Time) *order.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := u.nextOrderID
	u.nextOrderID++
	o := order.ReconstructOrder(id, "seed", tableID, installation, departure, time.Now())
	u.orders[id] = o
	return o
}

func (u *UnitOfWork) OrderCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.orders)
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &fakeTx{
		uow:          u,
		stagedTables: make(map[int64]*table.Table),
		stagedOrders: make(map[int64]*order.Order),
	}
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		// Rollback: staged writes are simply dropped.
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for id, t := range tx.stagedTables {
		u.tables[id] = t
	}
	for id, o := range tx.stagedOrders {
		u.orders[id] = o
	}
	return nil
}

func (u *UnitOfWork) Tables() shared.TableRepository {
	return &tableRepo{uow: u}
}

func (u *UnitOfWork) Orders() shared.OrderRepository {
	return &orderRepo{uow: u}
}

func (u *UnitOfWork) lockForTable(id int64) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()

	m, ok := u.tableLocks[id]
	if !ok {
		m = &sync.Mutex{}
		u.tableLocks[id] = m
	}
	return m
}

type fakeTx struct {
	uow          *UnitOfWork
	stagedTables map[int64]*table.Table
	stagedOrders map[int64]*order.Order
	held         []*sync.Mutex
}

func (t *fakeTx) Tables() shared.TableRepository {
	return &tableRepo{uow: t.uow, tx: t}
}

func (t *fakeTx) Orders() shared.OrderRepository {
	return &orderRepo{uow: t.uow, tx: t}
}

func (t *fakeTx) releaseLocks() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

type tableRepo struct {
	uow *UnitOfWork
	tx  *fakeTx // nil when pool-bound
}

func (r *tableRepo) FindByID(_ context.Context, id int64) (*table.Table, error) {
	if r.tx != nil {
		if t, ok := r.tx.stagedTables[id]; ok {
			return t, nil
		}
	}

	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	if t, ok := r.uow.tables[id]; ok {
		return t, nil
	}
	return nil, infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
}

func (r *tableRepo) FindAll(_ context.Context) ([]*table.Table, error) {
	return sortByNumber(r.visibleTables()), nil
}

func (r *tableRepo) Save(_ context.Context, t *table.Table) (*table.Table, error) {
	r.uow.mu.Lock()
	saved := t
	if saved.ID() == 0 {
		saved = t.WithID(r.uow.nextTableID)
		r.uow.nextTableID++
	}
	r.uow.mu.Unlock()

	if r.tx != nil {
		r.tx.stagedTables[saved.ID()] = saved
		return saved, nil
	}

	r.uow.mu.Lock()
	r.uow.tables[saved.ID()] = saved
	r.uow.mu.Unlock()
	return saved, nil
}

func (r *tableRepo) IsAvailableAt(_ context.Context, tableID int64, at time.Time) (bool, error) {
	for _, o := range r.visibleOrders() {
		if o.TableID() == tableID && o.Stay().Blocks(at) {
			return false, nil
		}
	}
	return true, nil
}

func (r *tableRepo) FindAvailableAt(ctx context.Context, at time.Time) ([]*table.Table, error) {
	var free []*table.Table
	for _, t := range r.visibleTables() {
		available, err := r.IsAvailableAt(ctx, t.ID(), at)
		if err != nil {
			return nil, err
		}
		if available {
			free = append(free, t)
		}
	}
	return sortByNumber(free), nil
}

func (r *tableRepo) LockForBooking(_ context.Context, tableID int64) error {
	if r.tx == nil {
		return nil
	}

	m := r.uow.lockForTable(tableID)
	m.Lock()
	r.tx.held = append(r.tx.held, m)
	return nil
}

func (r *tableRepo) visibleTables() []*table.Table {
	r.uow.mu.Lock()
	result := make([]*table.Table, 0, len(r.uow.tables))
	for _, t := range r.uow.tables {
		result = append(result, t)
	}
	r.uow.mu.Unlock()

	if r.tx != nil {
		for _, t := range r.tx.stagedTables {
			result = append(result, t)
		}
	}
	return result
}

func (r *tableRepo) visibleOrders() []*order.Order {
	r.uow.mu.Lock()
	result := make([]*order.Order, 0, len(r.uow.orders))
	for _, o := range r.uow.orders {
		result = append(result, o)
	}
	r.uow.mu.Unlock()

	if r.tx != nil {
		for _, o := range r.tx.stagedOrders {
			result = append(result, o)
		}
	}
	return result
}

type orderRepo struct {
	uow *UnitOfWork
	tx  *fakeTx
}

func (r *orderRepo) Create(_ context.Context, o *order.Order) (int64, error) {
	if r.uow.FailOrderCreate != nil {
		return 0, infra.WrapRepoErr("failed to create order", r.uow.FailOrderCreate)
	}

	r.uow.mu.Lock()
	id := r.uow.nextOrderID
	r.uow.nextOrderID++
	r.uow.mu.Unlock()

	saved := order.ReconstructOrder(id, o.Reference(), o.TableID(), o.Stay().Installation(), o.Stay().Departure(), o.CreatedAt())

	if r.tx != nil {
		r.tx.stagedOrders[id] = saved
		return id, nil
	}

	r.uow.mu.Lock()
	r.uow.orders[id] = saved
	r.uow.mu.Unlock()
	return id, nil
}

func (r *orderRepo) FindByID(_ context.Context, id int64) (*order.Order, error) {
	if r.tx != nil {
		if o, ok := r.tx.stagedOrders[id]; ok {
			return o, nil
		}
	}

	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	if o, ok := r.uow.orders[id]; ok {
		return o, nil
	}
	return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
}

func sortByNumber(tables []*table.Table) []*table.Table {
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Number() < tables[j].Number()
	})
	return tables
}
