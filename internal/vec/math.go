package vec

// FloorDiv делит a на b с округлением к минус бесконечности.
// Для отрицательных координат это важно: блок -1 принадлежит чанку -1, а не 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod возвращает неотрицательный остаток, согласованный с FloorDiv.
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
