// Package seed: generación pseudo-aleatoria determinista a partir de semillas
// string. Todo el dataset de demostración se deriva de estas funciones, de
// modo que la misma semilla reproduce exactamente los mismos registros.
//
// Algoritmo: hash polinomial de 32 bits (h = h*31 + codepoint, con overflow),
// normalizado a [0,1) vía |h mod 10000| / 10000 y escalado al rango pedido.
// Funciones puras: sin estado global, sin reloj, sin contadores.
package seed

// hash32 calcula el hash polinomial de 32 bits de la semilla.
// El overflow de int32 es parte del contrato: cambiar el ancho o el
// multiplicador cambia todos los datasets generados.
func hash32(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}

// Float devuelve un valor determinista en [min, max) derivado de la semilla.
// Acepta la semilla vacía (hash 0 -> min). Misma semilla, mismo valor, siempre.
func Float(s string, min, max float64) float64 {
	m := int64(hash32(s)) % 10000
	if m < 0 {
		m = -m
	}
	normalized := float64(m) / 10000.0
	return min + normalized*(max-min)
}

// Int devuelve un entero determinista en [min, max).
func Int(s string, min, max int) int {
	return int(Float(s, float64(min), float64(max)))
}

// Index devuelve un índice determinista en [0, n). Con n <= 0 devuelve 0 para
// que los catálogos vacíos no provoquen pánico en el generador.
func Index(s string, n int) int {
	if n <= 0 {
		return 0
	}
	return Int(s, 0, n)
}
