package marketing

import (
	"time"

	"github.com/usahaku/erp-dashboard/pkg/types"
)

// Campaign is a marketing campaign with a budget and a run window.
type Campaign struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	Channel   Channel    `json:"channel" gorm:"default:digital"`
	Budget    float64    `json:"budget" gorm:"not null"`
	StartDate types.Date `json:"start_date" gorm:"column:start_date;type:date"`
	EndDate   types.Date `json:"end_date" gorm:"column:end_date;type:date"`
	Status    Status     `json:"status" gorm:"default:planned"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Campaign) TableName() string {
	return "marketing_campaigns"
}

// Campaigns are keyed by name; there is no generated reference.
const OrderColumn = "start_date"

type Channel string

const (
	ChannelDigital Channel = "digital"
	ChannelSocial  Channel = "social"
	ChannelPrint   Channel = "print"
	ChannelTV      Channel = "tv"
	ChannelRadio   Channel = "radio"
	ChannelOutdoor Channel = "outdoor"
)

var ChannelLabels = map[Channel]string{
	ChannelDigital: "Digital",
	ChannelSocial:  "Social Media",
	ChannelPrint:   "Print",
	ChannelTV:      "Television",
	ChannelRadio:   "Radio",
	ChannelOutdoor: "Outdoor",
}

func (c Channel) Valid() bool {
	_, ok := ChannelLabels[c]
	return ok
}

func (c Channel) Label() string {
	return ChannelLabels[c]
}

type Status string

const (
	StatusPlanned   Status = "planned"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

var StatusLabels = map[Status]string{
	StatusPlanned:   "Planned",
	StatusActive:    "Active",
	StatusCompleted: "Completed",
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

func (s Status) Label() string {
	return StatusLabels[s]
}
