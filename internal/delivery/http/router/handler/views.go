package handler

import (
	"time"

	"cumple/internal/domain/entity"
	"cumple/internal/usecase"

	"github.com/google/uuid"
)

// View structs shape the JSON the API returns. Entities stay free of wire
// concerns; mapping happens here.

type profileView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func toProfileView(p *entity.Profile) *profileView {
	if p == nil {
		return nil
	}

	return &profileView{
		ID:    p.ID,
		Email: p.Email,
		Name:  p.Name,
		Role:  p.Role.String(),
	}
}

type eventView struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Celebrant         string    `json:"celebrant"`
	EventDate         time.Time `json:"eventDate"`
	VenueName         string    `json:"venueName"`
	AddressOfficial   string    `json:"addressOfficial"`
	AddressGoogleMaps string    `json:"addressGoogleMaps,omitempty"`
	AddressAppleMaps  string    `json:"addressAppleMaps,omitempty"`
	Description       string    `json:"description,omitempty"`
	IsActive          bool      `json:"isActive"`
	EmailSubjectES    string    `json:"emailSubjectEs,omitempty"`
	EmailBodyES       string    `json:"emailBodyEs,omitempty"`
	EmailSubjectEN    string    `json:"emailSubjectEn,omitempty"`
	EmailBodyEN       string    `json:"emailBodyEn,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	GuestCount     *int `json:"guestCount,omitempty"`
	ConfirmedCount *int `json:"confirmedCount,omitempty"`
}

func toEventView(e *entity.Event) *eventView {
	if e == nil {
		return nil
	}

	return &eventView{
		ID:                e.ID,
		Title:             e.Title,
		Celebrant:         e.Celebrant.String(),
		EventDate:         e.EventDate,
		VenueName:         e.VenueName,
		AddressOfficial:   e.AddressOfficial,
		AddressGoogleMaps: e.AddressGoogleMaps,
		AddressAppleMaps:  e.AddressAppleMaps,
		Description:       e.Description,
		IsActive:          e.IsActive,
		EmailSubjectES:    e.EmailSubjectES,
		EmailBodyES:       e.EmailBodyES,
		EmailSubjectEN:    e.EmailSubjectEN,
		EmailBodyEN:       e.EmailBodyEN,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

type eventDetailView struct {
	Event          *eventView `json:"event"`
	GuestCount     int        `json:"guestCount"`
	ConfirmedCount int        `json:"confirmedCount"`
	PendingCount   int        `json:"pendingCount"`
	PlusOnesTotal  int        `json:"plusOnesTotal"`
	GiftCount      int        `json:"giftCount"`
	FulfilledGifts int        `json:"fulfilledGifts"`
	GuestLink      string     `json:"guestLink"`
}

func toEventDetailView(d *usecase.EventDetail) *eventDetailView {
	if d == nil {
		return nil
	}

	return &eventDetailView{
		Event:          toEventView(d.Event),
		GuestCount:     d.GuestCount,
		ConfirmedCount: d.ConfirmedCount,
		PendingCount:   d.PendingCount,
		PlusOnesTotal:  d.PlusOnesTotal,
		GiftCount:      d.GiftCount,
		FulfilledGifts: d.FulfilledGifts,
		GuestLink:      d.GuestLink,
	}
}

type guestView struct {
	ID           uuid.UUID    `json:"id"`
	EventID      uuid.UUID    `json:"eventId"`
	Profile      *profileView `json:"profile,omitempty"`
	Status       string       `json:"status"`
	PlusOnes     int          `json:"plusOnes"`
	DietaryNotes string       `json:"dietaryNotes,omitempty"`
	Language     string       `json:"language"`
	RespondedAt  *time.Time   `json:"respondedAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func toGuestView(g *entity.EventGuest) *guestView {
	if g == nil {
		return nil
	}

	return &guestView{
		ID:           g.ID,
		EventID:      g.EventID,
		Profile:      toProfileView(g.Profile),
		Status:       g.Status.String(),
		PlusOnes:     g.PlusOnes,
		DietaryNotes: g.DietaryNotes,
		Language:     string(g.Language),
		RespondedAt:  g.RespondedAt,
		CreatedAt:    g.CreatedAt,
	}
}

func toGuestViews(guests []*entity.EventGuest) []*guestView {
	views := make([]*guestView, 0, len(guests))
	for _, g := range guests {
		views = append(views, toGuestView(g))
	}

	return views
}

type giftView struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"eventId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Remaining     float64   `json:"remaining"`
	IsFulfilled   bool      `json:"isFulfilled"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toGiftView(g *entity.GiftRegistryItem) *giftView {
	if g == nil {
		return nil
	}

	return &giftView{
		ID:            g.ID,
		EventID:       g.EventID,
		Title:         g.Title,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Remaining:     g.Remaining(),
		IsFulfilled:   g.IsFulfilled,
		ImageURL:      g.ImageURL,
		CreatedAt:     g.CreatedAt,
	}
}

func toGiftViews(gifts []*entity.GiftRegistryItem) []*giftView {
	views := make([]*giftView, 0, len(gifts))
	for _, g := range gifts {
		views = append(views, toGiftView(g))
	}

	return views
}

type contributionView struct {
	ID              uuid.UUID `json:"id"`
	GiftID          uuid.UUID `json:"giftId"`
	ContributorName string    `json:"contributorName"`
	Amount          float64   `json:"amount"`
	Message         string    `json:"message,omitempty"`
	IsAnonymous     bool      `json:"isAnonymous"`
	CreatedAt       time.Time `json:"createdAt"`
}

// toContributionView hides the contributor's name when the contribution
// was marked anonymous.
func toContributionView(c *entity.Contribution) *contributionView {
	if c == nil {
		return nil
	}

	name := ""
	if !c.IsAnonymous && c.Contributor != nil {
		name = c.Contributor.Name
	}

	return &contributionView{
		ID:              c.ID,
		GiftID:          c.GiftID,
		ContributorName: name,
		Amount:          c.Amount,
		Message:         c.Message,
		IsAnonymous:     c.IsAnonymous,
		CreatedAt:       c.CreatedAt,
	}
}

func toContributionViews(contributions []*entity.Contribution) []*contributionView {
	views := make([]*contributionView, 0, len(contributions))
	for _, c := range contributions {
		views = append(views, toContributionView(c))
	}

	return views
}

type supplierView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	ContactName  string    `json:"contactName,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

func toSupplierView(s *entity.Supplier) *supplierView {
	if s == nil {
		return nil
	}

	return &supplierView{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		ContactName:  s.ContactName,
		ContactPhone: s.ContactPhone,
		ContactEmail: s.ContactEmail,
		Notes:        s.Notes,
	}
}

type expenseView struct {
	ID          uuid.UUID     `json:"id"`
	EventID     *uuid.UUID    `json:"eventId,omitempty"`
	Supplier    *supplierView `json:"supplier,omitempty"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Status      string        `json:"status"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	PaidDate    *time.Time    `json:"paidDate,omitempty"`
}

func toExpenseView(e *entity.Expense) *expenseView {
	if e == nil {
		return nil
	}

	return &expenseView{
		ID:          e.ID,
		EventID:     e.EventID,
		Supplier:    toSupplierView(e.Supplier),
		Description: e.Description,
		Amount:      e.Amount,
		Status:      e.Status.String(),
		DueDate:     e.DueDate,
		PaidDate:    e.PaidDate,
	}
}

func toExpenseViews(expenses []*entity.Expense) []*expenseView {
	views := make([]*expenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, toExpenseView(e))
	}

	return views
}
