package handler

import (
	"time"

	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/aggregating"
)

// Calendar fixa o fuso e o início da semana usados nos gráficos e totais
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
	Clock     func() time.Time
}

func NewCalendar(cfg config.App) (Calendar, error) {
	weekStart, err := aggregating.ParseWeekday(cfg.WeekStartDay)
	if err != nil {
		return Calendar{}, err
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	return Calendar{
		Location:  location,
		WeekStart: weekStart,
		Clock:     time.Now,
	}, nil
}

// Now retorna o instante atual no fuso configurado
func (c Calendar) Now() time.Time {
	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}

	if c.Location == nil {
		return clock()
	}
	return clock().In(c.Location)
}
