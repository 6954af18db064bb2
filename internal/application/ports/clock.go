package ports

import "time"

// Clock fuente de la fecha de referencia. Se consulta una sola vez por petición.
type Clock interface {
	// Today fecha calendario actual (medianoche) en la zona horaria del negocio.
	Today() time.Time
}

// LocationClock reloj de sistema fijado a una zona horaria.
type LocationClock struct {
	loc *time.Location
	now func() time.Time
}

// NewLocationClock construye el reloj; loc nil usa UTC.
func NewLocationClock(loc *time.Location) *LocationClock {
	if loc == nil {
		loc = time.UTC
	}
	return &LocationClock{loc: loc, now: time.Now}
}

// Today implementa Clock.
func (c *LocationClock) Today() time.Time {
	t := c.now().In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// FixedClock reloj de fecha fija (tests y regeneración de reportes históricos).
type FixedClock time.Time

// Today implementa Clock.
func (c FixedClock) Today() time.Time {
	t := time.Time(c)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
