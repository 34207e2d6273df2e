package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

const (
	MaxTitleLength = 100
	MaxBodyLength  = 5000
)

type Ticket struct {
	id        uint
	title     string
	body      string
	category  vo.Category
	state     vo.TicketState
	ownerID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(
	title string,
	body string,
	category vo.Category,
	ownerID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if len(body) > MaxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", MaxBodyLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()

	return &Ticket{
		title:     title,
		body:      body,
		category:  category,
		state:     vo.StateOpen,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	body string,
	category vo.Category,
	state vo.TicketState,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid state")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:        id,
		title:     title,
		body:      body,
		category:  category,
		state:     state,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Body() string {
	return t.body
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) State() vo.TicketState {
	return t.state
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// GetOwnerID implements authorization.OwnedResource.
func (t *Ticket) GetOwnerID() uint {
	return t.ownerID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// CanToggleState reports whether the caller may flip the ticket state.
// Admins toggle in both directions. The owner may only close an open ticket;
// nobody else may touch it.
func (t *Ticket) CanToggleState(callerID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return callerID == t.ownerID && t.state.IsOpen()
}

// ToggleState flips open<->close after re-checking the caller's privilege.
func (t *Ticket) ToggleState(callerID uint, isAdmin bool) error {
	if !t.CanToggleState(callerID, isAdmin) {
		return fmt.Errorf("caller is not allowed to change the state of this ticket")
	}

	t.state = t.state.Toggled()
	t.updatedAt = biztime.NowUTC()

	return nil
}

// ChangeCategory replaces the category. Changing to the current category is
// accepted as a no-op. Admin-only enforcement lives in the use case layer.
func (t *Ticket) ChangeCategory(newCategory vo.Category) error {
	if !newCategory.IsValid() {
		return fmt.Errorf("invalid category: %s", newCategory)
	}

	if t.category == newCategory {
		return nil
	}

	t.category = newCategory
	t.updatedAt = biztime.NowUTC()

	return nil
}

// AcceptsBlocks reports whether follow-up blocks may be appended.
func (t *Ticket) AcceptsBlocks() bool {
	return t.state.IsOpen()
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.body) == 0 {
		return fmt.Errorf("body is required")
	}
	if !t.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	if !t.state.IsValid() {
		return fmt.Errorf("invalid state")
	}
	if t.ownerID == 0 {
		return fmt.Errorf("owner ID is required")
	}
	return nil
}
