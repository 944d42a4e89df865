package dto

import (
	"strings"
	"time"

	"diporani_web/internals/features/agendas/model"
	helper "diporani_web/internals/helpers"
	"diporani_web/internals/helpers/dbtime"
)

type AgendaDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`

	// label siap tampil (WIB)
	Day       string `json:"day"`
	Month     string `json:"month"`
	Time      string `json:"time"`
	DateLabel string `json:"date_label"`
}

func ToAgendaDTO(m model.AgendaModel) AgendaDTO {
	day, month := dbtime.CalendarBadge(m.StartsAt)
	d := AgendaDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: strings.TrimSpace(helper.Deref(m.Description)),
		Location:    strings.TrimSpace(helper.Deref(m.Location)),
		StartsAt:    m.StartsAt,
		EndsAt:      m.EndsAt,
		Day:         day,
		Month:       month,
		Time:        dbtime.FormatClock(m.StartsAt) + " WIB",
		DateLabel:   dbtime.FormatDateLong(m.StartsAt),
	}
	if m.EndsAt != nil && !m.EndsAt.IsZero() {
		d.Time = dbtime.FormatClock(m.StartsAt) + " - " + dbtime.FormatClock(*m.EndsAt) + " WIB"
	}
	return d
}

func ToAgendaDTOs(rows []model.AgendaModel) []AgendaDTO {
	out := make([]AgendaDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAgendaDTO(r))
	}
	return out
}
