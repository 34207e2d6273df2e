package ticketing

import "time"

// Ticket is a ticket as returned by the helpdesk API.
type Ticket struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	State         string    `json:"state"`
	OwnerID       uint      `json:"owner_id"`
	OwnerUsername string    `json:"owner_username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Block is a follow-up entry on a ticket.
type Block struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedTicket is the acknowledgement returned when a ticket is opened.
type CreatedTicket struct {
	TicketID  uint      `json:"ticket_id"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedBlock is the acknowledgement returned when a follow-up is appended.
type CreatedBlock struct {
	BlockID   uint      `json:"block_id"`
	TicketID  uint      `json:"ticket_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Session describes the authenticated user behind the session cookie.
type Session struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// AccessToken is a short-lived bearer token for the estimation service.
type AccessToken struct {
	Token     string `json:"token"`
	AuthLevel string `json:"authLevel"`
	ExpiresIn int64  `json:"expires_in"`
}

// CreateTicketRequest is the payload for creating a ticket.
type CreateTicketRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// EstimateRequest is the payload for a single estimation. The ID is only
// used by batch requests, where it correlates each estimate with its ticket.
type EstimateRequest struct {
	ID       uint   `json:"id,omitempty"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Estimate is an effort estimate produced by the estimation service. In
// batch responses the ID echoes the requested ticket id.
type Estimate struct {
	ID         uint   `json:"id,omitempty"`
	Title      string `json:"title"`
	Estimation int    `json:"estimation"`
	Unit       string `json:"unit"`
}
