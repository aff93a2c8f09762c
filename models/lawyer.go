package models

import "time"

// Lawyer availability values.
const (
	AvailabilityAvailable = "available"
	AvailabilityBusy      = "busy"
	AvailabilityAway      = "unavailable"
)

// Lawyer is an entry of the lawyer directory.
type Lawyer struct {
	ID               string    `bson:"id" json:"id" yaml:"id"`
	FirstName        string    `bson:"firstName" json:"firstName" yaml:"firstName"`
	LastName         string    `bson:"lastName" json:"lastName" yaml:"lastName"`
	Email            string    `bson:"email" json:"email" yaml:"email"`
	Phone            string    `bson:"phone" json:"phone" yaml:"phone"`
	BarCouncilNumber string    `bson:"barCouncilNumber" json:"barCouncilNumber" yaml:"barCouncilNumber"`
	Specializations  []string  `bson:"specializations" json:"specializations" yaml:"specializations"`
	Languages        []string  `bson:"languages" json:"languages" yaml:"languages"`
	Experience       int       `bson:"experience" json:"experience" yaml:"experience"`
	Location         string    `bson:"location" json:"location" yaml:"location"`
	Bio              string    `bson:"bio" json:"bio" yaml:"bio"`
	ConsultationFee  float64   `bson:"consultationFee" json:"consultationFee" yaml:"consultationFee"`
	Availability     string    `bson:"availability" json:"availability" yaml:"availability"`
	IsVerified       bool      `bson:"isVerified" json:"isVerified" yaml:"isVerified"`
	Rating           float64   `bson:"rating" json:"rating" yaml:"rating"`
	TotalCases       int       `bson:"totalCases" json:"totalCases" yaml:"totalCases"`
	SuccessfulCases  int       `bson:"successfulCases" json:"successfulCases" yaml:"successfulCases"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt" yaml:"-"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt" yaml:"-"`
}

// FullName joins first and last name.
func (l *Lawyer) FullName() string {
	return l.FirstName + " " + l.LastName
}

// Clone returns a deep copy of the lawyer.
func (l *Lawyer) Clone() *Lawyer {
	if l == nil {
		return nil
	}
	out := *l
	out.Specializations = append([]string{}, l.Specializations...)
	out.Languages = append([]string{}, l.Languages...)
	return &out
}

// Public strips contact and registration details from a directory entry.
func (l *Lawyer) Public() LawyerSummary {
	return LawyerSummary{
		ID:              l.ID,
		Name:            l.FullName(),
		Specializations: l.Specializations,
		Languages:       l.Languages,
		Experience:      l.Experience,
		Location:        l.Location,
		Bio:             l.Bio,
		ConsultationFee: l.ConsultationFee,
		Availability:    l.Availability,
		IsVerified:      l.IsVerified,
		Rating:          l.Rating,
		TotalCases:      l.TotalCases,
		SuccessfulCases: l.SuccessfulCases,
	}
}

// LawyerSummary is the public projection of a lawyer.
type LawyerSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specializations []string `json:"specializations"`
	Languages       []string `json:"languages"`
	Experience      int      `json:"experience"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio"`
	ConsultationFee float64  `json:"consultationFee"`
	Availability    string   `json:"availability"`
	IsVerified      bool     `json:"isVerified"`
	Rating          float64  `json:"rating"`
	TotalCases      int      `json:"totalCases"`
	SuccessfulCases int      `json:"successfulCases"`
}

// LawyerRegistration is the body of POST /lawyers/register.
type LawyerRegistration struct {
	FirstName        string   `json:"firstName" validate:"min=2"`
	LastName         string   `json:"lastName" validate:"min=2"`
	Email            string   `json:"email" validate:"email"`
	Phone            string   `json:"phone" validate:"len=10,numeric"`
	BarCouncilNumber string   `json:"barCouncilNumber" validate:"required"`
	Specializations  []string `json:"specializations" validate:"min=1"`
	Languages        []string `json:"languages" validate:"min=1"`
	Experience       int      `json:"experience" validate:"gte=0"`
	Location         string   `json:"location" validate:"required"`
	Bio              string   `json:"bio"`
	ConsultationFee  float64  `json:"consultationFee"`
	Availability     string   `json:"availability" validate:"omitempty,oneof=available busy unavailable"`
}

// LawyerFilter holds the directory listing filters.
type LawyerFilter struct {
	Specialization string
	Language       string
	Location       string
	Verified       *bool
	Availability   string
}

// LawyerQuery is a parsed directory listing request.
type LawyerQuery struct {
	Filter LawyerFilter
	Page   int
	Limit  int
}

// LawyerPagination is the page metadata of a directory listing.
type LawyerPagination struct {
	Pagination
	TotalLawyers int64 `json:"totalLawyers"`
}

// LawyerPage is one page of the directory.
type LawyerPage struct {
	Lawyers    []LawyerSummary  `json:"lawyers"`
	Pagination LawyerPagination `json:"pagination"`
}
