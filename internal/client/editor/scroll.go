package editor

// Виртуальное окно прокрутки: чистый расчёт видимого диапазона строк.

// VisibleRange вычисляет индексы [start, end) видимых строк
// по смещению прокрутки и геометрии viewport.
// overscan расширяет диапазон в обе стороны для плавной прокрутки
func VisibleRange(scrollOffset, viewportHeight, rowHeight, overscan, totalRowCount int) (start, end int) {
	if rowHeight <= 0 || totalRowCount <= 0 {
		return 0, 0
	}

	start = scrollOffset/rowHeight - overscan
	if start < 0 {
		start = 0
	}

	end = ceilDiv(scrollOffset+viewportHeight, rowHeight) + overscan
	if end > totalRowCount {
		end = totalRowCount
	}
	if start > end {
		start = end
	}

	return start, end
}

// NearBottom сообщает, что прокрутка приблизилась к концу загруженных
// строк и пора подгружать следующую страницу
func NearBottom(scrollHeight, scrollTop, clientHeight, threshold int) bool {
	return scrollHeight-scrollTop-clientHeight < threshold
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
