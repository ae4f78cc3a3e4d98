package service

import (
	"sort"

	"society-billing-svc/internal/models"
	"society-billing-svc/internal/repository"
	"society-billing-svc/pkg/apperrors"
	"society-billing-svc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

// fakeResidentRepo is an in-memory ResidentRepository.
type fakeResidentRepo struct {
	residents map[string]*models.Resident
	getErr    error         // forced failure for GetByID
	billRepo  *fakeBillRepo // cascade target for DeleteWithBills
}

var _ repository.ResidentRepository = (*fakeResidentRepo)(nil)

func newFakeResidentRepo(residents ...*models.Resident) *fakeResidentRepo {
	repo := &fakeResidentRepo{residents: make(map[string]*models.Resident)}
	for _, r := range residents {
		repo.residents[r.ID] = r
	}
	return repo
}

func (f *fakeResidentRepo) Create(resident *models.Resident) error {
	f.residents[resident.ID] = resident
	return nil
}

func (f *fakeResidentRepo) GetByID(id string) (*models.Resident, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	resident, ok := f.residents[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return resident, nil
}

func (f *fakeResidentRepo) GetByFlatNumber(flatNumber, excludeID string) (*models.Resident, error) {
	for _, r := range f.residents {
		if r.FlatNumber == flatNumber && r.ID != excludeID {
			return r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeResidentRepo) List() ([]*models.Resident, error) {
	out := make([]*models.Resident, 0, len(f.residents))
	for _, r := range f.residents {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FlatNumber < out[j].FlatNumber })
	return out, nil
}

func (f *fakeResidentRepo) Update(resident *models.Resident) error {
	if _, ok := f.residents[resident.ID]; !ok {
		return apperrors.ErrNotFound
	}
	f.residents[resident.ID] = resident
	return nil
}

func (f *fakeResidentRepo) Delete(id string) error {
	if _, ok := f.residents[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.residents, id)
	return nil
}

func (f *fakeResidentRepo) DeleteWithBills(id string) (int64, error) {
	if _, ok := f.residents[id]; !ok {
		return 0, apperrors.ErrNotFound
	}
	var cascaded int64
	if f.billRepo != nil {
		for billID, b := range f.billRepo.bills {
			if b.ResidentID == id {
				delete(f.billRepo.bills, billID)
				cascaded++
			}
		}
	}
	delete(f.residents, id)
	return cascaded, nil
}

// fakeBillRepo is an in-memory BillRepository.
type fakeBillRepo struct {
	bills     map[string]*models.Bill
	inserted  []*models.Bill
	insertErr error // forced failure for CreateBulk
}

var _ repository.BillRepository = (*fakeBillRepo)(nil)

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[string]*models.Bill)}
}

func (f *fakeBillRepo) Create(bill *models.Bill) error {
	f.bills[bill.ID] = bill
	f.inserted = append(f.inserted, bill)
	return nil
}

func (f *fakeBillRepo) CreateBulk(bills []*models.Bill) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, b := range bills {
		f.bills[b.ID] = b
		f.inserted = append(f.inserted, b)
	}
	return nil
}

func (f *fakeBillRepo) GetByID(id string) (*models.Bill, error) {
	bill, ok := f.bills[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return bill, nil
}

func (f *fakeBillRepo) List(filter models.BillFilter) ([]*models.Bill, error) {
	var out []*models.Bill
	for _, b := range f.bills {
		if filter.Month != "" && b.Month != filter.Month {
			continue
		}
		if filter.Year != "" && b.Year != filter.Year {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.ResidentID != "" && b.ResidentID != filter.ResidentID {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBillRepo) UpdateStatus(id, status string) (*models.Bill, error) {
	bill, ok := f.bills[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	bill.Status = status
	out := *bill
	return &out, nil
}

func (f *fakeBillRepo) Delete(id string) error {
	if _, ok := f.bills[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.bills, id)
	return nil
}

func (f *fakeBillRepo) CountByResidentID(residentID string) (int64, error) {
	var count int64
	for _, b := range f.bills {
		if b.ResidentID == residentID {
			count++
		}
	}
	return count, nil
}
