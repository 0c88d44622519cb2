package usecase

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"construction_console/internal/config"
	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/collection"
	"construction_console/internal/usecase/interfaces"
)

// Repositories groups the store-backed repositories the console works against.
type Repositories struct {
	Items     interfaces.IItemRepository
	Estimates interfaces.IEstimateRepository
	Customers interfaces.ICustomerRepository
	FollowUps interfaces.IFollowUpRepository
	Company   interfaces.ICompanyRepository
}

// Workspace is the local state of the console. Each collection view is kept current by a
// subscription on its repository; use cases apply their own changes to the views first and let
// the remote write catch up.
type Workspace struct {
	Items     *collection.View[entities.Item]
	Estimates *collection.View[entities.Estimate]
	Customers *collection.View[entities.Customer]
	FollowUps *collection.View[entities.FollowUp]

	repos Repositories
	log   *logrus.Entry

	mu        sync.RWMutex
	info      entities.CompanyInfo
	infoFound bool
	logo      string

	subMu sync.Mutex
	stops []func()
}

func NewWorkspace(repos Repositories) *Workspace {
	return &Workspace{
		Items:     collection.NewView[entities.Item](),
		Estimates: collection.NewView[entities.Estimate](),
		Customers: collection.NewView[entities.Customer](),
		FollowUps: collection.NewView[entities.FollowUp](),
		repos:     repos,
		log:       config.Module("workspace"),
	}
}

// Start subscribes every view. Calling it twice without Close has no effect.
// Backends may deliver the initial state before their subscribe call returns.
func (w *Workspace) Start() {
	w.subMu.Lock()
	defer w.subMu.Unlock()
	if len(w.stops) > 0 {
		return
	}
	w.stops = append(w.stops,
		w.repos.Items.Sync(w.Items.Replace, w.syncError("items")),
		w.repos.Estimates.Sync(w.Estimates.Replace, w.syncError("estimates")),
		w.repos.Customers.Sync(w.Customers.Replace, w.syncError("customers")),
		w.repos.FollowUps.Sync(w.FollowUps.Replace, w.syncError("followups")),
		w.repos.Company.WatchInfo(w.setInfo, w.syncError("info")),
		w.repos.Company.WatchLogo(w.setLogo, w.syncError("logo")),
	)
}

// Close detaches every subscription.
func (w *Workspace) Close() {
	w.subMu.Lock()
	stops := w.stops
	w.stops = nil
	w.subMu.Unlock()
	for _, stop := range stops {
		if stop != nil {
			stop()
		}
	}
}

func (w *Workspace) syncError(name string) func(error) {
	return func(err error) {
		config.LogError(config.GetLogger(), "workspace", "Sync", "subscription error", logrus.Fields{"collection": name}, err)
	}
}

func (w *Workspace) setInfo(info entities.CompanyInfo, found bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.info = info
	w.infoFound = found
}

func (w *Workspace) setLogo(logo string, found bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !found {
		logo = ""
	}
	w.logo = logo
}

// CompanyInfo returns the stored letterhead with blank fields filled from the defaults.
func (w *Workspace) CompanyInfo() entities.CompanyInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.info.WithDefaults()
}

func (w *Workspace) Logo() (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.logo, w.logo != ""
}

// SortedEstimates lists estimates newest first.
func (w *Workspace) SortedEstimates() []entities.Estimate {
	list := w.Estimates.List()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}
