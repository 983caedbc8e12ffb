package apiclient

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ViewState is one of the four screens of the offers dashboard. Exactly one
// state is active at a time.
type ViewState string

const (
	ViewList   ViewState = "list"
	ViewCreate ViewState = "create"
	ViewDetail ViewState = "detail"
	ViewEdit   ViewState = "edit"
)

// ErrInvalidTransition is returned when a navigation is not allowed from the
// current state, e.g. editing while the list is showing.
var ErrInvalidTransition = errors.New("apiclient: view transition not allowed from current state")

// OfferView tracks which offers screen is active and which offer is open.
// Navigation outside the allowed transitions is rejected, never coerced.
type OfferView struct {
	mu     sync.Mutex
	state  ViewState
	active uuid.UUID
}

// NewOfferView starts at the list screen.
func NewOfferView() *OfferView {
	return &OfferView{state: ViewList}
}

// State returns the active screen.
func (v *OfferView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// ActiveOffer returns the offer open in the detail or edit screen.
func (v *OfferView) ActiveOffer() (uuid.UUID, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != ViewDetail && v.state != ViewEdit {
		return uuid.Nil, false
	}

	return v.active, true
}

// StartCreate opens the create form from the list.
func (v *OfferView) StartCreate() error {
	return v.transition(ViewList, ViewCreate, uuid.Nil)
}

// FinishCreate returns to the list after a successful create.
func (v *OfferView) FinishCreate() error {
	return v.transition(ViewCreate, ViewList, uuid.Nil)
}

// CancelCreate abandons the create form.
func (v *OfferView) CancelCreate() error {
	return v.transition(ViewCreate, ViewList, uuid.Nil)
}

// OpenDetail opens an offer from a list row.
func (v *OfferView) OpenDetail(offerID uuid.UUID) error {
	return v.transition(ViewList, ViewDetail, offerID)
}

// StartEdit opens the edit form from the detail screen.
func (v *OfferView) StartEdit() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != ViewDetail {
		return errors.WithStack(ErrInvalidTransition)
	}
	v.state = ViewEdit

	return nil
}

// FinishEdit returns to the detail screen after a successful save.
func (v *OfferView) FinishEdit() error {
	return v.backToDetail()
}

// CancelEdit abandons the edit form.
func (v *OfferView) CancelEdit() error {
	return v.backToDetail()
}

// Back returns from the detail screen to the list.
func (v *OfferView) Back() error {
	return v.transition(ViewDetail, ViewList, uuid.Nil)
}

// FinishDelete returns to the list after the open offer was deleted.
func (v *OfferView) FinishDelete() error {
	return v.transition(ViewDetail, ViewList, uuid.Nil)
}

func (v *OfferView) backToDetail() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != ViewEdit {
		return errors.WithStack(ErrInvalidTransition)
	}
	v.state = ViewDetail

	return nil
}

func (v *OfferView) transition(from, to ViewState, active uuid.UUID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != from {
		return errors.WithStack(ErrInvalidTransition)
	}
	v.state = to
	v.active = active

	return nil
}
