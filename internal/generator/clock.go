package generator

import "time"

// Clock abstrae el "ahora" del generador y del resolutor de rangos. Las
// fechas de pedido son relativas al día actual por diseño; inyectar el reloj
// permite fijarlo en tests y obtener datasets byte-idénticos entre corridas.
type Clock interface {
	Now() time.Time
}

// SystemClock reloj real.
type SystemClock struct{}

// Now devuelve la hora del sistema.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock reloj congelado en un instante (tests y regeneraciones
// reproducibles).
type FixedClock struct {
	Instant time.Time
}

// Now devuelve siempre el instante fijado.
func (c FixedClock) Now() time.Time { return c.Instant }
