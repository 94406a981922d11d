package internal

import "time"

// Per-distance capacity. Display-only: creation does not reserve a slot,
// so availableSlots can go negative under concurrent over-subscription.
var DistanceCapacity = map[string]int{
	"5km":  850,
	"10km": 500,
}

type Registration struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Distance  string `json:"distance"` // 5km|10km

	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`

	Phone          string  `json:"phone"`
	EmergencyPhone *string `json:"emergencyPhone"`

	Club        *string `json:"club"`
	IsNotInClub string  `json:"isNotInClub"` // "true"|"false", string on the wire
	Profession  *string `json:"profession"`

	MedicalCertificate string `json:"medicalCertificate"` // must be "true" at creation
	TermsAgreement     string `json:"termsAgreement"`     // must be "true" at creation

	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	PassHash string `json:"-"`
}

type Photo struct {
	ID           int       `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Caption      *string   `json:"caption"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type Document struct {
	ID           int       `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Type         string    `json:"type"` // free-form category (route map, rules, ...)
	UploadedAt   time.Time `json:"uploadedAt"`
}

type LogEntry struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type Stats struct {
	Total           int            `json:"total"`
	CountByDistance map[string]int `json:"countByDistance"`
	AvailableSlots  map[string]int `json:"availableSlots"`
}

// ComputeStats is a read-only projection over the full registration list.
func ComputeStats(regs []Registration) Stats {
	st := Stats{
		CountByDistance: map[string]int{},
		AvailableSlots:  map[string]int{},
	}
	for d := range DistanceCapacity {
		st.CountByDistance[d] = 0
	}
	for _, r := range regs {
		st.Total++
		st.CountByDistance[r.Distance]++
	}
	for d, total := range DistanceCapacity {
		st.AvailableSlots[d] = total - st.CountByDistance[d]
	}
	return st
}
